package i18n

// Message keys used from Go code.
const (
	MsgNetworkError     = "The server is not reachable. Check your connection and try again."
	MsgAuthError        = "Your session has expired or access was denied. Please sign in again."
	MsgServerError      = "The server ran into a problem. Please try again later."
	MsgValidationError  = "The submitted data is not valid."
	MsgOtherError       = "Something went wrong while loading data."
	MsgPartialWarning   = "Some data could not be loaded: %s"
	MsgAllFailed        = "Category data could not be loaded."
	MsgRefreshed        = "Data refreshed."
	MsgPartsCategories  = "Parts categories"
	MsgElevatorTypes    = "Elevator types"
	MsgActiveItems      = "Active items"
	MsgTotalManagement  = "Total managed"
	MsgDashboardStats   = "Statistics"
	MsgDashboardTrend   = "Monthly trend"
	MsgDashboardPie     = "Category distribution"
	MsgDashboardActs    = "Recent activity"
	MsgDashboardPartial = "Some dashboard sections could not be loaded: %s"
	MsgCategoryCreated  = "Category \"%s\" was created."
	MsgTypeCreated      = "Elevator type \"%s\" was created."
	MsgFieldRequired    = "%s is required."
	MsgFieldTooLong     = "%s must be at most %d characters."
	MsgFieldURL         = "%s must be an http(s) address."
	MsgSubmitFailed     = "Saving failed: %s"
	MsgListSeparator    = "، "

	MsgSiteName       = "Elevator parts admin"
	MsgNavDashboard   = "Dashboard"
	MsgNavCategories  = "Category management"
	MsgNavParts       = "Parts"
	MsgNavAPIDocs     = "API documentation"
	MsgNotFound       = "The page you requested was not found."
	MsgBadRequest     = "The request could not be processed."
	MsgInternalError  = "An unexpected error occurred. Please try again."
	MsgNoActivities   = "No recent activity."
	MsgAPIAvailable   = "Server reachable"
	MsgAPIUnavailable = "Server unreachable"
	MsgTotalParts     = "Total parts"
	MsgLowStockParts  = "Low-stock parts"
	MsgForbidden      = "The form has expired. Reload the page and try again."
	MsgNewCategory    = "New parts category"
	MsgNewType        = "New elevator type"
	MsgTooMany        = "Too many submissions. Please wait a minute and try again."

	MsgTitleBadRequest = "Bad request"
	MsgTitleForbidden  = "Access denied"
	MsgTitleNotFound   = "Page not found"
	MsgTitleTooMany    = "Too many requests"
	MsgTitleError      = "Error"

	MsgTabOverview  = "Overview"
	MsgTabEndpoints = "Endpoints"
	MsgTabErrors    = "Errors"
	MsgTabSamples   = "Code samples"
)

var catalog = map[string]string{
	MsgNetworkError:     "ارتباط با سرور برقرار نیست. اتصال خود را بررسی کرده و دوباره تلاش کنید.",
	MsgAuthError:        "نشست شما منقضی شده یا دسترسی ندارید. لطفاً دوباره وارد شوید.",
	MsgServerError:      "خطایی در سرور رخ داد. لطفاً بعداً دوباره تلاش کنید.",
	MsgValidationError:  "اطلاعات ارسال‌شده معتبر نیست.",
	MsgOtherError:       "در بارگذاری اطلاعات خطایی رخ داد.",
	MsgPartialWarning:   "بخشی از اطلاعات بارگذاری نشد: %s",
	MsgAllFailed:        "اطلاعات دسته‌بندی‌ها بارگذاری نشد.",
	MsgRefreshed:        "اطلاعات به‌روزرسانی شد.",
	MsgPartsCategories:  "دسته‌بندی قطعات",
	MsgElevatorTypes:    "انواع آسانسور",
	MsgActiveItems:      "موارد فعال",
	MsgTotalManagement:  "کل موارد مدیریتی",
	MsgDashboardStats:   "آمار",
	MsgDashboardTrend:   "روند ماهانه",
	MsgDashboardPie:     "توزیع دسته‌بندی‌ها",
	MsgDashboardActs:    "فعالیت‌های اخیر",
	MsgDashboardPartial: "برخی بخش‌های داشبورد بارگذاری نشد: %s",
	MsgCategoryCreated:  "دسته‌بندی «%s» ایجاد شد.",
	MsgTypeCreated:      "نوع آسانسور «%s» ایجاد شد.",
	MsgFieldRequired:    "وارد کردن %s الزامی است.",
	MsgFieldTooLong:     "%s حداکثر می‌تواند %d نویسه باشد.",
	MsgFieldURL:         "%s باید یک نشانی http(s) باشد.",
	MsgSubmitFailed:     "ذخیره‌سازی انجام نشد: %s",
	MsgListSeparator:    "، ",

	MsgSiteName:       "پنل مدیریت قطعات آسانسور",
	MsgNavDashboard:   "داشبورد",
	MsgNavCategories:  "مدیریت دسته‌بندی‌ها",
	MsgNavParts:       "قطعات",
	MsgNavAPIDocs:     "مستندات API",
	MsgNotFound:       "صفحه‌ی درخواستی یافت نشد.",
	MsgBadRequest:     "درخواست قابل پردازش نیست.",
	MsgInternalError:  "خطای غیرمنتظره‌ای رخ داد. لطفاً دوباره تلاش کنید.",
	MsgNoActivities:   "فعالیتی ثبت نشده است.",
	MsgAPIAvailable:   "سرور در دسترس است",
	MsgAPIUnavailable: "سرور در دسترس نیست",
	MsgTotalParts:     "کل قطعات",
	MsgLowStockParts:  "قطعات کم‌موجود",
	MsgForbidden:      "اعتبار فرم به پایان رسیده است. صفحه را دوباره بارگذاری کنید.",
	MsgNewCategory:    "دسته‌بندی جدید قطعه",
	MsgNewType:        "نوع جدید آسانسور",
	MsgTooMany:        "تعداد درخواست‌ها زیاد است. یک دقیقه صبر کنید و دوباره تلاش کنید.",

	MsgTitleBadRequest: "درخواست نامعتبر",
	MsgTitleForbidden:  "دسترسی مجاز نیست",
	MsgTitleNotFound:   "صفحه یافت نشد",
	MsgTitleTooMany:    "درخواست‌های بیش از حد",
	MsgTitleError:      "خطا",

	MsgTabOverview:  "نمای کلی",
	MsgTabEndpoints: "نقاط پایانی",
	MsgTabErrors:    "خطاها",
	MsgTabSamples:   "نمونه کد",
}
