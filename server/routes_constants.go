package server

const (
	RouteLogin          = "/login"
	RouteLogout         = "/logout"
	RouteForgotPassword = "/forgot-password"
	RouteResetPassword  = "/reset-password"

	RouteDashboard = "/"

	RouteAgencies     = "/agencies"
	RouteAgencySelect = "/agencies/{id}/select"
	RouteAgencyUpdate = "/agencies/{id}/update"
	RouteAgencyDelete = "/agencies/{id}/delete"

	RouteCars            = "/cars"
	RouteCarUpdate       = "/cars/{id}/update"
	RouteCarDelete       = "/cars/{id}/delete"
	RouteCarAvailability = "/cars/{id}/availability"

	RouteCustomers      = "/customers"
	RouteCustomerUpdate = "/customers/{id}/update"
	RouteCustomerDelete = "/customers/{id}/delete"

	RouteAppointments      = "/appointments"
	RouteAppointmentStatus = "/appointments/{id}/status"

	RoutePromotions      = "/promotions"
	RoutePromotionUpdate = "/promotions/{id}/update"
	RoutePromotionDelete = "/promotions/{id}/delete"

	RouteFiles      = "/files"
	RouteFileStage  = "/files/stage"
	RouteFileUpload = "/files/upload"
	RouteFileClear  = "/files/clear"
	RouteFileDelete = "/files/{id}/delete"

	RouteConversations      = "/conversations"
	RouteConversationView   = "/conversations/{id}"
	RouteConversationDelete = "/conversations/{id}/delete"

	RouteSettings      = "/settings"
	RouteWhatsAppGuide = "/settings/whatsapp-guide"

	RouteThemeToggle     = "/theme/toggle"
	RouteProfile         = "/profile"
	RouteProfilePassword = "/profile/password"
	RouteTestChat        = "/test-chat"
)

const sessionCookieName = "dealer_session"
