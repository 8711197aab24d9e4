package types

import (
	"encoding/json"
)

// RequiredTechnology is one job-side technology requirement carrying an
// importance tier instead of a confidence value.
type RequiredTechnology struct {
	Name       string         `json:"name"`
	Importance ImportanceTier `json:"importance"`
	Required   bool           `json:"required,omitempty"`
}

// RequiredCloudServices groups job cloud requirements by provider.
type RequiredCloudServices struct {
	AWS    []RequiredTechnology `json:"aws,omitempty"`
	Azure  []RequiredTechnology `json:"azure,omitempty"`
	GCP    []RequiredTechnology `json:"gcp,omitempty"`
	Others []RequiredTechnology `json:"others,omitempty"`
}

// RequiredTechnologies groups job technology requirements by the fixed
// category taxonomy, mirroring the candidate-side structure.
type RequiredTechnologies struct {
	ProgrammingLanguages []RequiredTechnology  `json:"programming_languages,omitempty"`
	CloudServices        RequiredCloudServices `json:"cloud_services,omitempty"`
	Databases            []RequiredTechnology  `json:"databases,omitempty"`
	DevOps               []RequiredTechnology  `json:"devops,omitempty"`
	Others               []RequiredTechnology  `json:"others,omitempty"`
}

// RequiredSoftSkill is one job-side soft skill requirement.
type RequiredSoftSkill struct {
	Skill      string         `json:"skill"`
	Importance ImportanceTier `json:"importance"`
	Required   bool           `json:"required,omitempty"`
}

// RequiredSoftSkills groups job soft-skill requirements by named category.
type RequiredSoftSkills struct {
	LeadershipManagement       []RequiredSoftSkill `json:"leadership_management,omitempty"`
	CommunicationCollaboration []RequiredSoftSkill `json:"communication_collaboration,omitempty"`
	ProblemSolvingAnalytical   []RequiredSoftSkill `json:"problem_solving_analytical,omitempty"`
	AdaptabilityLearning       []RequiredSoftSkill `json:"adaptability_learning,omitempty"`
	TimeManagementOrganization []RequiredSoftSkill `json:"time_management_organization,omitempty"`
	CreativityInnovation       []RequiredSoftSkill `json:"creativity_innovation,omitempty"`
	Interpersonal              []RequiredSoftSkill `json:"interpersonal,omitempty"`
	Others                     []RequiredSoftSkill `json:"others,omitempty"`
}

// JobProfile is the structured output of an external job-requirements
// extraction step.
type JobProfile struct {
	JobTitle             string               `json:"job_title"`
	JobLevel             string               `json:"job_level,omitempty"`
	MinimumExperience    string               `json:"minimum_experience"`
	RequiredTechnologies RequiredTechnologies `json:"required_technologies"`
	RequiredSoftSkills   RequiredSoftSkills   `json:"required_soft_skills"`
}

// Validate checks the structural input contract.
func (p *JobProfile) Validate() error {
	if p == nil {
		return &MalformedProfileError{Profile: "job", Field: "(root)", Message: "profile is nil"}
	}
	if p.JobTitle == "" {
		return &MalformedProfileError{Profile: "job", Field: "job_title", Message: "job title is required"}
	}
	return nil
}

// UnmarshalJSON normalizes unknown importance tier strings to medium so one
// sloppy extraction value never fails the whole document.
func (r *RequiredTechnology) UnmarshalJSON(data []byte) error {
	type alias RequiredTechnology
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Importance = ParseImportanceTier(string(a.Importance))
	*r = RequiredTechnology(a)
	return nil
}

// UnmarshalJSON normalizes unknown importance tier strings to medium.
func (r *RequiredSoftSkill) UnmarshalJSON(data []byte) error {
	type alias RequiredSoftSkill
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Importance = ParseImportanceTier(string(a.Importance))
	*r = RequiredSoftSkill(a)
	return nil
}

// ReqTechGroup is one flattened slice of job technology requirements, tagged
// with its category and (for cloud) provider.
type ReqTechGroup struct {
	Category TechCategory
	Provider CloudProvider
	Entries  []RequiredTechnology
}

// TechGroups returns all requirement groups in fixed taxonomy order.
func (t *RequiredTechnologies) TechGroups() []ReqTechGroup {
	return []ReqTechGroup{
		{Category: CategoryProgrammingLanguages, Entries: t.ProgrammingLanguages},
		{Category: CategoryCloudServices, Provider: ProviderAWS, Entries: t.CloudServices.AWS},
		{Category: CategoryCloudServices, Provider: ProviderAzure, Entries: t.CloudServices.Azure},
		{Category: CategoryCloudServices, Provider: ProviderGCP, Entries: t.CloudServices.GCP},
		{Category: CategoryCloudServices, Provider: ProviderOtherClouds, Entries: t.CloudServices.Others},
		{Category: CategoryDatabases, Entries: t.Databases},
		{Category: CategoryDevOps, Entries: t.DevOps},
		{Category: CategoryOtherTech, Entries: t.Others},
	}
}

// ReqSkillGroup is one flattened slice of job soft-skill requirements.
type ReqSkillGroup struct {
	Category SoftSkillCategory
	Entries  []RequiredSoftSkill
}

// SkillGroups returns all requirement groups in fixed taxonomy order.
func (s *RequiredSoftSkills) SkillGroups() []ReqSkillGroup {
	return []ReqSkillGroup{
		{Category: SkillLeadership, Entries: s.LeadershipManagement},
		{Category: SkillCommunication, Entries: s.CommunicationCollaboration},
		{Category: SkillProblem, Entries: s.ProblemSolvingAnalytical},
		{Category: SkillAdaptability, Entries: s.AdaptabilityLearning},
		{Category: SkillTimeMgmt, Entries: s.TimeManagementOrganization},
		{Category: SkillCreativity, Entries: s.CreativityInnovation},
		{Category: SkillInterpersonal, Entries: s.Interpersonal},
		{Category: SkillOther, Entries: s.Others},
	}
}
