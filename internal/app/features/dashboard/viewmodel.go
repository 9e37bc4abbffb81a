// internal/app/features/dashboard/viewmodel.go
package dashboard

import (
	"math"

	"github.com/dalemusser/liftadmin/internal/app/system/fetchstate"
	"github.com/dalemusser/liftadmin/internal/app/system/i18n"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
)

type statCard struct {
	Label string
	Value string
}

// bar is one trend column; Percent is relative to the largest value.
type bar struct {
	Label   string
	Value   string
	Percent int
}

// share is one distribution row; Percent is of the total.
type share struct {
	Name    string
	Value   string
	Percent int
}

type activityRow struct {
	Action string
	User   string
	At     string
	Status string
}

type pageData struct {
	viewdata.BaseVM

	Status     fetchstate.Status
	Banner     *fetchstate.Banner
	Stats      []statCard
	Trend      []bar
	Shares     []share
	Activities []activityRow
	EmptyActs  string
}

func buildPageData(s State) pageData {
	d := s.Data
	data := pageData{
		Status: s.Status,
		Banner: s.Banner,
		Stats: []statCard{
			{Label: i18n.T(i18n.MsgTotalParts), Value: i18n.Number(d.Stats.TotalParts)},
			{Label: i18n.T(i18n.MsgPartsCategories), Value: i18n.Number(d.Stats.PartsCategories)},
			{Label: i18n.T(i18n.MsgElevatorTypes), Value: i18n.Number(d.Stats.ElevatorTypes)},
			{Label: i18n.T(i18n.MsgLowStockParts), Value: i18n.Number(d.Stats.LowStockParts)},
		},
		EmptyActs: i18n.T(i18n.MsgNoActivities),
	}

	var top float64
	for _, p := range d.Trend {
		top = math.Max(top, p.Value)
	}
	for _, p := range d.Trend {
		data.Trend = append(data.Trend, bar{
			Label:   p.Label,
			Value:   i18n.Number(int(math.Round(p.Value))),
			Percent: percent(p.Value, top),
		})
	}

	var total float64
	for _, sl := range d.Distribution {
		total += sl.Value
	}
	for _, sl := range d.Distribution {
		data.Shares = append(data.Shares, share{
			Name:    sl.Name,
			Value:   i18n.Number(int(math.Round(sl.Value))),
			Percent: percent(sl.Value, total),
		})
	}

	for _, a := range d.Activities {
		row := activityRow{Action: a.Action, User: a.User, Status: a.Status}
		if !a.At.IsZero() {
			row.At = a.At.Format("2006-01-02 15:04")
		}
		data.Activities = append(data.Activities, row)
	}
	return data
}

func percent(v, of float64) int {
	if of <= 0 || v <= 0 {
		return 0
	}
	return int(math.Round(v / of * 100))
}
