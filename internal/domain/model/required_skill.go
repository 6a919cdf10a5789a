package model

// RequiredSkill is a skill requirement attached to a job application. Its
// presence has no effect on ordering invariants.
type RequiredSkill struct {
	ID                      string  `json:"id"                                   db:"id"`
	JobApplicationID        string  `json:"job_application_id"                   db:"job_application_id"`
	Name                    string  `json:"name"                                 db:"name"`
	Description             *string `json:"description,omitempty"                db:"description"`
	YearsOfExperienceNeeded *int    `json:"years_of_experience_needed,omitempty" db:"years_of_experience_needed"`
	YearsOfExperienceHave   *int    `json:"years_of_experience_have,omitempty"   db:"years_of_experience_have"`
	IsOptional              bool    `json:"is_optional"                          db:"is_optional"`
	IsRequirementMet        bool    `json:"is_requirement_met"                   db:"is_requirement_met"`
}
