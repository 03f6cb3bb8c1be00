package models

type ModerationAction string

const (
	ModerationApprove    ModerationAction = "approve"
	ModerationVerify     ModerationAction = "verify"
	ModerationReject     ModerationAction = "reject"
	ModerationDeactivate ModerationAction = "deactivate"
)

type ModerationObject string

const (
	CompanyObject ModerationObject = "company"
	ReviewObject  ModerationObject = "review"
	JobObject     ModerationObject = "job"
)

type VerificationBadge string

const (
	BadgeVerifiedVacancy VerificationBadge = "Verified Vacancy"
	BadgeVerifiedCompany VerificationBadge = "From Verified Company"
	BadgeApprovedCompany VerificationBadge = "Posted by Approved Company"
	BadgeNotVerified     VerificationBadge = "Not Verified"
)
