package models

type JobType string

const (
	FullTimeJob  JobType = "FULL_TIME"
	PartTimeJob  JobType = "PART_TIME"
	ContractJob  JobType = "CONTRACT"
	FreelanceJob JobType = "FREELANCE"
	InternJob    JobType = "INTERN"
)

var jobTypeHumanName = map[JobType]string{
	FullTimeJob:  "Full-time",
	PartTimeJob:  "Part-time",
	ContractJob:  "Contract",
	FreelanceJob: "Freelance",
	InternJob:    "Internship",
}

func (t JobType) ToHuman() string {
	if human, exist := jobTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t JobType) IsValid() bool {
	_, ok := jobTypeHumanName[t]
	return ok
}

type ExperienceLevel string

const (
	EntryLevel  ExperienceLevel = "ENTRY"
	MidLevel    ExperienceLevel = "MID"
	SeniorLevel ExperienceLevel = "SENIOR"
	ExecLevel   ExperienceLevel = "EXEC"
)

var experienceHumanName = map[ExperienceLevel]string{
	EntryLevel:  "Entry-Level",
	MidLevel:    "Mid-Level",
	SeniorLevel: "Senior",
	ExecLevel:   "Executive",
}

func (e ExperienceLevel) ToHuman() string {
	if human, exist := experienceHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e ExperienceLevel) IsValid() bool {
	_, ok := experienceHumanName[e]
	return ok
}

type WorkLocationType string

const (
	OnsiteLocation WorkLocationType = "ONSITE"
	RemoteLocation WorkLocationType = "REMOTE"
	HybridLocation WorkLocationType = "HYBRID"
)

func (w WorkLocationType) IsValid() bool {
	switch w {
	case OnsiteLocation, RemoteLocation, HybridLocation:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyKES Currency = "KES"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyKES, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}
