// Package types provides type definitions for structured data exchanged with
// the matching engine.
package types

// TechCategory identifies one bucket of the technology taxonomy.
type TechCategory string

const (
	CategoryProgrammingLanguages TechCategory = "programming_languages"
	CategoryCloudServices        TechCategory = "cloud_services"
	CategoryDatabases            TechCategory = "databases"
	CategoryDevOps               TechCategory = "devops"
	CategoryOtherTech            TechCategory = "others"
)

// CloudProvider identifies a sub-group of the cloud_services category.
// Cloud requirements only match candidate entries under the same provider.
type CloudProvider string

const (
	ProviderAWS         CloudProvider = "aws"
	ProviderAzure       CloudProvider = "azure"
	ProviderGCP         CloudProvider = "gcp"
	ProviderOtherClouds CloudProvider = "others"
)

// SoftSkillCategory identifies one named soft-skill group.
type SoftSkillCategory string

const (
	SkillLeadership    SoftSkillCategory = "leadership_management"
	SkillCommunication SoftSkillCategory = "communication_collaboration"
	SkillProblem       SoftSkillCategory = "problem_solving_analytical"
	SkillAdaptability  SoftSkillCategory = "adaptability_learning"
	SkillTimeMgmt      SoftSkillCategory = "time_management_organization"
	SkillCreativity    SoftSkillCategory = "creativity_innovation"
	SkillInterpersonal SoftSkillCategory = "interpersonal"
	SkillOther         SoftSkillCategory = "others"
)

// Technology is one candidate-side technology mention with the extraction
// probability (0-100) that the usage is authentic.
type Technology struct {
	Name        string `json:"name"`
	Probability int    `json:"probability"`
}

// CloudServices groups candidate cloud technologies by provider.
type CloudServices struct {
	AWS    []Technology `json:"aws,omitempty"`
	Azure  []Technology `json:"azure,omitempty"`
	GCP    []Technology `json:"gcp,omitempty"`
	Others []Technology `json:"others,omitempty"`
}

// Technologies groups candidate technologies by the fixed category taxonomy.
type Technologies struct {
	ProgrammingLanguages []Technology  `json:"programming_languages,omitempty"`
	CloudServices        CloudServices `json:"cloud_services,omitempty"`
	Databases            []Technology  `json:"databases,omitempty"`
	DevOps               []Technology  `json:"devops,omitempty"`
	Others               []Technology  `json:"others,omitempty"`
}

// SoftSkill is one candidate-side soft skill mention with the extraction
// confidence (0-100) and supporting evidence text.
type SoftSkill struct {
	Skill      string `json:"skill"`
	Confidence int    `json:"confidence"`
	Evidence   string `json:"evidence,omitempty"`
}

// SoftSkills groups candidate soft skills by named category.
type SoftSkills struct {
	LeadershipManagement       []SoftSkill `json:"leadership_management,omitempty"`
	CommunicationCollaboration []SoftSkill `json:"communication_collaboration,omitempty"`
	ProblemSolvingAnalytical   []SoftSkill `json:"problem_solving_analytical,omitempty"`
	AdaptabilityLearning       []SoftSkill `json:"adaptability_learning,omitempty"`
	TimeManagementOrganization []SoftSkill `json:"time_management_organization,omitempty"`
	CreativityInnovation       []SoftSkill `json:"creativity_innovation,omitempty"`
	Interpersonal              []SoftSkill `json:"interpersonal,omitempty"`
	Others                     []SoftSkill `json:"others,omitempty"`
}

// CandidateProfile is the structured output of an external CV analysis step.
type CandidateProfile struct {
	ID                string       `json:"id,omitempty"`
	Name              string       `json:"name"`
	YearsOfExperience string       `json:"years_of_experience"`
	Technologies      Technologies `json:"technologies"`
	SoftSkills        SoftSkills   `json:"soft_skills"`
}

// Validate checks the structural input contract. A missing required field is
// a MalformedProfileError; empty skill groups are fine.
func (p *CandidateProfile) Validate() error {
	if p == nil {
		return &MalformedProfileError{Profile: "candidate", Field: "(root)", Message: "profile is nil"}
	}
	if p.Name == "" {
		return &MalformedProfileError{Profile: "candidate", Field: "name", Message: "candidate name is required"}
	}
	return nil
}

// TechGroup is one flattened slice of the candidate technology taxonomy,
// tagged with its category and (for cloud) provider.
type TechGroup struct {
	Category TechCategory
	Provider CloudProvider
	Entries  []Technology
}

// TechGroups returns all technology groups in fixed taxonomy order.
func (t *Technologies) TechGroups() []TechGroup {
	return []TechGroup{
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

// SkillGroup is one flattened slice of the candidate soft-skill taxonomy.
type SkillGroup struct {
	Category SoftSkillCategory
	Entries  []SoftSkill
}

// SkillGroups returns all soft-skill groups in fixed taxonomy order.
func (s *SoftSkills) SkillGroups() []SkillGroup {
	return []SkillGroup{
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
