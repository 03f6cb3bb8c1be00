package models

type LogAction string

const (
	LogSignup               LogAction = "signup"
	LogLogin                LogAction = "login"
	LogUpdateProfile        LogAction = "update_profile"
	LogDeleteAccount        LogAction = "delete_account"
	LogResetPassword        LogAction = "reset_password"
	LogSubmitTestimony      LogAction = "submit_testimony"
	LogAdminUpdateUser      LogAction = "admin_update_user"
	LogAdminDeleteUser      LogAction = "admin_delete_user"
	LogAdminUpdateTestimony LogAction = "admin_update_testimony"
	LogAdminDeleteTestimony LogAction = "admin_delete_testimony"
	LogAdminLogin           LogAction = "admin_login"
	LogAdminLogout          LogAction = "admin_logout"
)

const PortalAdminName = "admin"
