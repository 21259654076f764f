package consts

const (
	HeaderVersion              = "X-ATELIER-VERSION"
	HeaderRevision             = "X-ATELIER-REVISION"
	HeaderForwardedUser        = "X-Forwarded-User"
	HeaderForwardedName        = "X-Forwarded-Preferred-Username"
	HeaderForwardedEmail       = "X-Forwarded-Email"
	HeaderForwardedLoginMethod = "X-Forwarded-Login-Method"
)
