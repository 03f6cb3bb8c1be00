package models

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationInterview   ApplicationStatus = "INTERVIEW"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationHired       ApplicationStatus = "HIRED"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationApplied:     "Applied",
	ApplicationUnderReview: "Under Review",
	ApplicationInterview:   "Interviewing",
	ApplicationRejected:    "Rejected",
	ApplicationHired:       "Hired",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationStatusHumanName[s]
	return ok
}

// ApplicationStatuses keeps display order for status pickers.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationApplied,
	ApplicationUnderReview,
	ApplicationInterview,
	ApplicationRejected,
	ApplicationHired,
}
