package server

import "net/http"

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginPageHandler())
	s.RegisterRouteFunc("POST "+RouteLogin, s.LoginSubmitHandler())
	s.RegisterRouteFunc("GET "+RouteLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteForgotPassword, s.ForgotPasswordPageHandler())
	s.RegisterRouteFunc("POST "+RouteForgotPassword, s.ForgotPasswordSubmitHandler())
	s.RegisterRouteFunc("GET "+RouteResetPassword, s.ResetPasswordPageHandler())
	s.RegisterRouteFunc("POST "+RouteResetPassword, s.ResetPasswordSubmitHandler())

	// Workspace pages (require session-based auth)
	s.registerPage("GET "+RouteDashboard, s.DashboardHandler())

	s.registerPage("GET "+RouteAgencies, s.AgenciesPageHandler())
	s.registerPage("POST "+RouteAgencies, s.AgencyCreateHandler())
	s.registerPage("POST "+RouteAgencySelect, s.AgencySelectHandler())
	s.registerPage("POST "+RouteAgencyUpdate, s.AgencyUpdateHandler())
	s.registerPage("POST "+RouteAgencyDelete, s.AgencyDeleteHandler())

	s.registerPage("GET "+RouteCars, s.CarsPageHandler())
	s.registerPage("POST "+RouteCars, s.CarCreateHandler())
	s.registerPage("POST "+RouteCarUpdate, s.CarUpdateHandler())
	s.registerPage("POST "+RouteCarDelete, s.CarDeleteHandler())
	s.registerPage("POST "+RouteCarAvailability, s.CarAvailabilityHandler())

	s.registerPage("GET "+RouteCustomers, s.CustomersPageHandler())
	s.registerPage("POST "+RouteCustomers, s.CustomerCreateHandler())
	s.registerPage("POST "+RouteCustomerUpdate, s.CustomerUpdateHandler())
	s.registerPage("POST "+RouteCustomerDelete, s.CustomerDeleteHandler())

	s.registerPage("GET "+RouteAppointments, s.AppointmentsPageHandler())
	s.registerPage("POST "+RouteAppointments, s.AppointmentCreateHandler())
	s.registerPage("POST "+RouteAppointmentStatus, s.AppointmentStatusHandler())

	s.registerPage("GET "+RoutePromotions, s.PromotionsPageHandler())
	s.registerPage("POST "+RoutePromotions, s.PromotionCreateHandler())
	s.registerPage("POST "+RoutePromotionUpdate, s.PromotionUpdateHandler())
	s.registerPage("POST "+RoutePromotionDelete, s.PromotionDeleteHandler())

	s.registerPage("GET "+RouteFiles, s.FilesPageHandler())
	s.registerPage("POST "+RouteFileStage, s.FileStageHandler())
	s.registerPage("POST "+RouteFileUpload, s.FileUploadHandler())
	s.registerPage("POST "+RouteFileClear, s.FileClearHandler())
	s.registerPage("POST "+RouteFileDelete, s.FileDeleteHandler())

	s.registerPage("GET "+RouteConversations, s.ConversationsPageHandler())
	s.registerPage("GET "+RouteConversationView, s.ConversationMessagesHandler())
	s.registerPage("POST "+RouteConversationDelete, s.ConversationDeleteHandler())

	s.registerPage("GET "+RouteSettings, s.SettingsPageHandler())
	s.registerPage("POST "+RouteSettings, s.SettingsUpdateHandler())
	s.registerPage("GET "+RouteWhatsAppGuide, s.WhatsAppGuideHandler())
	s.registerPage("POST "+RouteThemeToggle, s.ThemeToggleHandler())

	s.registerPage("GET "+RouteProfile, s.ProfilePageHandler())
	s.registerPage("POST "+RouteProfile, s.ProfileUpdateHandler())
	s.registerPage("POST "+RouteProfilePassword, s.ProfilePasswordHandler())

	s.registerPage("GET "+RouteTestChat, s.TestChatPageHandler())
	s.registerPage("POST "+RouteTestChat, s.TestChatSubmitHandler())
}

// registerPage wires a workspace page with the HTML middleware stack plus
// session auth.
func (s *Server) registerPage(pattern string, handler http.HandlerFunc) {
	s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.HTMLMiddleware(s.RequireSessionAuth())...))
}
