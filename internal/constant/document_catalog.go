package constant

type DocumentType struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DocumentCategory struct {
	Id          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Types       []DocumentType `json:"types"`
}

const (
	CategoryBusinessLetters   = "business_letters"
	CategoryContracts         = "contracts"
	CategoryEmployment        = "employment"
	CategoryRealEstate        = "real_estate"
	CategoryBusinessFormation = "business_formation"
	CategoryLegalNotices      = "legal_notices"
	CategoryPersonalLegal     = "personal_legal"
)

var DocumentCategories = []DocumentCategory{
	{
		Id:          CategoryBusinessLetters,
		Name:        "Business Letters",
		Description: "Professional business correspondence and conflict resolution",
		Icon:        "💼",
		Types: []DocumentType{
			{Id: "demand_letter", Name: "Demand Letter", Description: "Formal demands for payment or action"},
			{Id: "cease_desist", Name: "Cease & Desist", Description: "Stop unwanted behavior or infringement"},
			{Id: "complaint_letter", Name: "Complaint Letter", Description: "Formal complaints about services or products"},
			{Id: "collection_notice", Name: "Collection Notice", Description: "Debt collection and payment demands"},
			{Id: "breach_notice", Name: "Breach Notice", Description: "Contract breach notifications"},
			{Id: "settlement_discussion", Name: "Settlement Discussion", Description: "Professional letters to initiate settlement negotiations and resolution"},
		},
	},
	{
		Id:          CategoryContracts,
		Name:        "Contracts & Agreements",
		Description: "Legal agreements and contract documents",
		Icon:        "📄",
		Types: []DocumentType{
			{Id: "service_agreement", Name: "Service Agreement", Description: "Service provider contracts"},
			{Id: "nda", Name: "Non-Disclosure Agreement", Description: "Confidentiality agreements"},
			{Id: "partnership_agreement", Name: "Partnership Agreement", Description: "Business partnership contracts"},
			{Id: "consulting_agreement", Name: "Consulting Agreement", Description: "Consultant service contracts"},
			{Id: "freelance_contract", Name: "Freelance Contract", Description: "Independent contractor agreements"},
		},
	},
	{
		Id:          CategoryEmployment,
		Name:        "Employment Documents",
		Description: "Workplace and employment-related documents",
		Icon:        "👥",
		Types: []DocumentType{
			{Id: "employment_contract", Name: "Employment Contract", Description: "Employee hire agreements"},
			{Id: "termination_letter", Name: "Termination Letter", Description: "Employee termination notices"},
			{Id: "resignation_letter", Name: "Resignation Letter", Description: "Employee resignation notices"},
			{Id: "disciplinary_notice", Name: "Disciplinary Notice", Description: "Employee discipline documentation"},
			{Id: "reference_letter", Name: "Reference Letter", Description: "Employee reference letters"},
		},
	},
	{
		Id:          CategoryRealEstate,
		Name:        "Real Estate Documents",
		Description: "Property and real estate legal documents",
		Icon:        "🏠",
		Types: []DocumentType{
			{Id: "lease_agreement", Name: "Lease Agreement", Description: "Rental property contracts"},
			{Id: "eviction_notice", Name: "Eviction Notice", Description: "Tenant eviction notifications"},
			{Id: "purchase_agreement", Name: "Purchase Agreement", Description: "Property purchase contracts"},
			{Id: "property_disclosure", Name: "Property Disclosure", Description: "Property condition disclosures"},
			{Id: "rent_increase_notice", Name: "Rent Increase Notice", Description: "Rent adjustment notifications"},
		},
	},
	{
		Id:          CategoryBusinessFormation,
		Name:        "Business Formation",
		Description: "Business setup and corporate documents",
		Icon:        "🏢",
		Types: []DocumentType{
			{Id: "llc_operating_agreement", Name: "LLC Operating Agreement", Description: "LLC governance documents"},
			{Id: "articles_incorporation", Name: "Articles of Incorporation", Description: "Corporate formation documents"},
			{Id: "bylaws", Name: "Corporate Bylaws", Description: "Corporate governance rules"},
			{Id: "business_plan", Name: "Business Plan", Description: "Formal business planning documents"},
			{Id: "partnership_dissolution", Name: "Partnership Dissolution", Description: "Partnership termination documents"},
		},
	},
	{
		Id:          CategoryLegalNotices,
		Name:        "Legal Notices",
		Description: "Official legal notifications and notices",
		Icon:        "⚖️",
		Types: []DocumentType{
			{Id: "copyright_notice", Name: "Copyright Notice", Description: "Copyright protection notifications"},
			{Id: "trademark_notice", Name: "Trademark Notice", Description: "Trademark protection notices"},
			{Id: "privacy_policy", Name: "Privacy Policy", Description: "Data privacy compliance documents"},
			{Id: "terms_of_service", Name: "Terms of Service", Description: "Service usage agreements"},
			{Id: "liability_waiver", Name: "Liability Waiver", Description: "Risk assumption documents"},
		},
	},
	{
		Id:          CategoryPersonalLegal,
		Name:        "Personal Legal Documents",
		Description: "Individual legal documents and personal matters",
		Icon:        "👤",
		Types: []DocumentType{
			{Id: "will", Name: "Last Will & Testament", Description: "Estate planning documents"},
			{Id: "power_of_attorney", Name: "Power of Attorney", Description: "Legal authority delegation"},
			{Id: "living_will", Name: "Living Will", Description: "Medical care directives"},
			{Id: "name_change_petition", Name: "Name Change Petition", Description: "Legal name change documents"},
			{Id: "divorce_agreement", Name: "Divorce Agreement", Description: "Divorce settlement documents"},
		},
	},
}
