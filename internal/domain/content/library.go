package content

import "github.com/culturiq/engine/internal/domain/demographics"

// DefaultVariantRegistry returns the curated production advice library.
// Every construct list ends with exactly one generic fallback variant.
func DefaultVariantRegistry() VariantRegistry {
	return NewVariantRegistry(
		financialReservesVariants,
		traditionalKnowledgeVariants,
		adaptiveResponseVariants,
		communityInvolvementVariants,
		culturalAuthenticityVariants,
		ipProtectionVariants,
		communityDecisionMakingVariants,
		productDevelopmentVariants,
		intergenerationalPlanningVariants,
		digitalDistributionVariants,
		practitionerAccessVariants,
	)
}

var financialReservesVariants = []Variant{
	{
		ID: "fin-solo-startup",
		Context: VariantContext{
			Construct: "financialReserves",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
			Stages:    []demographics.BusinessStage{demographics.StageIdea, demographics.StageStartup},
		},
		Title:       "Build Your Craft Emergency Fund",
		Description: "Start with a \"craft emergency fund\" - set aside 10% of each sale into a separate account until you reach 2 months of essential expenses.",
		ActionSteps: []ActionStep{
			{Action: "Open a separate savings account labeled \"Business Reserve\"", Timeframe: ThisWeek},
			{Action: "Calculate your monthly essential expenses (materials, tools, studio rent)", Timeframe: ThisWeek},
			{Action: "Set up automatic transfer of 10% from each sale to your reserve", Timeframe: ThisWeek},
			{Action: "Track progress toward 2-month reserve goal", Timeframe: Ongoing},
		},
		RelatedCaseStudies: []string{"palestinian-tatreez", "bangladeshi-nakshi-kantha"},
		Impact:             "Provides crucial buffer against slow seasons and unexpected expenses",
		Priority:           PriorityCritical,
	},
	{
		ID: "fin-coop-growth",
		Context: VariantContext{
			Construct: "financialReserves",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild},
			Stages:    []demographics.BusinessStage{demographics.StageGrowth, demographics.StageScaling, demographics.StageEstablished},
		},
		Title:       "Establish Cooperative Reserve Fund",
		Description: "Create a formal reserve fund policy with member buy-in. Aim for 3-6 months operating expenses with clear governance for accessing funds.",
		ActionSteps: []ActionStep{
			{Action: "Propose reserve fund policy at next member meeting", Timeframe: ThisMonth},
			{Action: "Set contribution rate (5-10% of revenues) and target amount", Timeframe: ThisMonth},
			{Action: "Establish clear criteria for when reserves can be accessed", Timeframe: ThisMonth},
			{Action: "Create separate interest-bearing account for reserves", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"moroccan-fes-pottery", "vietnamese-craft-villages"},
		Impact:             "Protects all members during market disruptions",
		Priority:           PriorityHigh,
	},
	{
		ID: "fin-ngo",
		Context: VariantContext{
			Construct: "financialReserves",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCommunityOrg},
		},
		Title:       "Diversify Funding & Build Reserves",
		Description: "Reduce grant dependency by building unrestricted reserves. Aim for 6 months operating costs through diversified revenue streams.",
		ActionSteps: []ActionStep{
			{Action: "Audit current funding sources and identify concentration risk", Timeframe: ThisWeek},
			{Action: "Develop one earned revenue stream (workshops, products, services)", Timeframe: ThisQuarter},
			{Action: "Negotiate unrestricted funding in next grant applications", Timeframe: Ongoing},
			{Action: "Set board policy for minimum reserve level", Timeframe: ThisMonth},
		},
		RelatedCaseStudies: []string{"nunavut-indigenous-enterprises"},
		Impact:             "Ensures program continuity regardless of grant cycles",
		Priority:           PriorityHigh,
	},
	{
		ID: "fin-business-scale",
		Context: VariantContext{
			Construct: "financialReserves",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit},
			Stages:    []demographics.BusinessStage{demographics.StageScaling, demographics.StageEstablished},
		},
		Title:       "Strategic Cash Reserve Management",
		Description: "Maintain 6-month operating reserve plus additional strategic investment fund. Consider tiered reserves for different scenarios.",
		ActionSteps: []ActionStep{
			{Action: "Review current cash position and burn rate", Timeframe: ThisWeek},
			{Action: "Set up tiered reserve structure (emergency, opportunity, growth)", Timeframe: ThisMonth},
			{Action: "Establish credit line for additional flexibility", Timeframe: ThisQuarter},
			{Action: "Create quarterly reserve review process", Timeframe: Ongoing},
		},
		RelatedCaseStudies: []string{"jamaican-cultural-industries"},
		Impact:             "Enables opportunistic growth while protecting against downturns",
		Priority:           PriorityMedium,
	},
	{
		ID:          "fin-default",
		Context:     VariantContext{Construct: "financialReserves"},
		Title:       "Build Operating Reserves",
		Description: "Build financial reserves of 3-6 months operating expenses to weather disruptions and seize opportunities.",
		ActionSteps: []ActionStep{
			{Action: "Calculate your monthly operating expenses", Timeframe: ThisWeek},
			{Action: "Open a separate reserve account", Timeframe: ThisWeek},
			{Action: "Set up regular contributions (5-10% of revenue)", Timeframe: ThisMonth},
			{Action: "Set milestone targets and celebrate progress", Timeframe: Ongoing},
		},
		Impact:   "Critical buffer against disruptions",
		Priority: PriorityCritical,
	},
}

var traditionalKnowledgeVariants = []Variant{
	{
		ID: "tk-solo",
		Context: VariantContext{
			Construct: "traditionalKnowledge",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
		},
		Title:       "Document Your Craft Journey",
		Description: "Create a personal knowledge archive combining your techniques with stories from mentors and elders who taught you.",
		ActionSteps: []ActionStep{
			{Action: "Start a craft journal documenting techniques you use daily", Timeframe: ThisWeek},
			{Action: "Record video of yourself demonstrating key techniques", Timeframe: ThisMonth},
			{Action: "Interview one elder or mentor about traditional methods", Timeframe: ThisMonth},
			{Action: "Organize files with clear naming and backup system", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"palestinian-tatreez", "korean-hanji"},
		Impact:             "Preserves your unique knowledge for future generations",
		Priority:           PriorityHigh,
	},
	{
		ID: "tk-coop",
		Context: VariantContext{
			Construct: "traditionalKnowledge",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild, demographics.OrgCommunityOrg},
		},
		Title:       "Community Knowledge Archive",
		Description: "Establish a systematic community documentation program with elder involvement and clear protocols for sensitive knowledge.",
		ActionSteps: []ActionStep{
			{Action: "Form documentation committee with elder representation", Timeframe: ThisMonth},
			{Action: "Create protocol for sensitive vs. shareable knowledge", Timeframe: ThisMonth},
			{Action: "Train 2-3 community members in documentation methods", Timeframe: ThisQuarter},
			{Action: "Launch monthly \"knowledge keeper\" recording sessions", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"vietnamese-craft-villages", "nunavut-indigenous-enterprises"},
		Impact:             "Ensures authentic practices survive even as elders age",
		Priority:           PriorityCritical,
	},
	{
		ID: "tk-indigenous",
		Context: VariantContext{
			Construct: "traditionalKnowledge",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndigenousEnterprise},
		},
		Title:       "Culturally-Safe Knowledge Documentation",
		Description: "Develop documentation that respects Indigenous protocols, with clear community ownership and control over access.",
		ActionSteps: []ActionStep{
			{Action: "Consult elders on appropriate documentation protocols", Timeframe: ThisWeek},
			{Action: "Establish knowledge governance framework", Timeframe: ThisMonth},
			{Action: "Choose secure storage with community-controlled access", Timeframe: ThisMonth},
			{Action: "Begin priority documentation with proper permissions", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"nunavut-indigenous-enterprises", "mikmaq-clearwater"},
		Impact:             "Protects sacred knowledge while preserving practical techniques",
		Priority:           PriorityCritical,
	},
	{
		ID: "tk-institution",
		Context: VariantContext{
			Construct: "traditionalKnowledge",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCulturalInstitution},
		},
		Title:       "Professional Heritage Documentation",
		Description: "Implement museum-standard documentation practices while maintaining relationships with source communities.",
		ActionSteps: []ActionStep{
			{Action: "Audit existing collection for documentation gaps", Timeframe: ThisMonth},
			{Action: "Develop community partnership agreements for new documentation", Timeframe: ThisQuarter},
			{Action: "Train staff in ethical documentation practices", Timeframe: ThisQuarter},
			{Action: "Create digital archive with appropriate access controls", Timeframe: Ongoing},
		},
		RelatedCaseStudies: []string{"korean-hanji"},
		Impact:             "Creates authoritative record while respecting cultural protocols",
		Priority:           PriorityHigh,
	},
	{
		ID:          "tk-default",
		Context:     VariantContext{Construct: "traditionalKnowledge"},
		Title:       "Document Traditional Knowledge",
		Description: "Create systematic documentation of traditional practices, techniques, and stories with community elders.",
		ActionSteps: []ActionStep{
			{Action: "Identify priority knowledge to document first", Timeframe: ThisWeek},
			{Action: "Choose documentation format (video, written, audio)", Timeframe: ThisWeek},
			{Action: "Schedule first documentation session", Timeframe: ThisMonth},
			{Action: "Create secure backup and storage system", Timeframe: ThisMonth},
		},
		Impact:   "Foundation for authentic cultural innovation",
		Priority: PriorityHigh,
	},
}

var adaptiveResponseVariants = []Variant{
	{
		ID: "adapt-startup",
		Context: VariantContext{
			Construct: "adaptiveResponse",
			Stages:    []demographics.BusinessStage{demographics.StageIdea, demographics.StageStartup},
		},
		Title:       "Build Agility Into Your Foundation",
		Description: "Startups have a natural advantage in adaptability. Formalize it with simple systems that help you pivot quickly while staying true to your cultural mission.",
		ActionSteps: []ActionStep{
			{Action: "Create a one-page \"pivot protocol\" for responding to changes", Timeframe: ThisWeek},
			{Action: "Set up monthly check-in to assess what's working", Timeframe: ThisWeek},
			{Action: "Identify 2-3 alternative revenue streams you could activate", Timeframe: ThisMonth},
			{Action: "Build relationships with 3 potential partners before you need them", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"palestinian-tatreez"},
		Impact:             "Highest discriminatory power - increases success rate by 64.7%",
		Priority:           PriorityCritical,
	},
	{
		ID: "adapt-established",
		Context: VariantContext{
			Construct: "adaptiveResponse",
			Stages:    []demographics.BusinessStage{demographics.StageScaling, demographics.StageEstablished},
		},
		Title:       "Institutionalize Adaptive Capacity",
		Description: "Transform your organization's hard-won experience into repeatable systems that help you respond faster to future disruptions.",
		ActionSteps: []ActionStep{
			{Action: "Document how you responded to past crises", Timeframe: ThisMonth},
			{Action: "Create crisis response playbook with clear roles", Timeframe: ThisQuarter},
			{Action: "Run annual \"disruption drill\" scenario planning", Timeframe: ThisQuarter},
			{Action: "Build cross-training so multiple people can fill key roles", Timeframe: Ongoing},
		},
		RelatedCaseStudies: []string{"vietnamese-craft-villages", "nunavut-indigenous-enterprises"},
		Impact:             "Ensures organizational resilience as you scale",
		Priority:           PriorityHigh,
	},
	{
		ID: "adapt-coop",
		Context: VariantContext{
			Construct: "adaptiveResponse",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild},
		},
		Title:       "Collective Adaptive Capacity",
		Description: "Leverage your collective strength by creating shared response systems that help all members weather disruptions together.",
		ActionSteps: []ActionStep{
			{Action: "Create member communication tree for rapid information sharing", Timeframe: ThisWeek},
			{Action: "Establish mutual aid protocols between members", Timeframe: ThisMonth},
			{Action: "Pool resources for shared equipment or facilities", Timeframe: ThisQuarter},
			{Action: "Develop group purchasing and selling agreements", Timeframe: ThisQuarter},
		},
		RelatedCaseStudies: []string{"moroccan-fes-pottery", "bangladeshi-nakshi-kantha"},
		Impact:             "Multiplies individual resilience through collective action",
		Priority:           PriorityHigh,
	},
	{
		ID:          "adapt-default",
		Context:     VariantContext{Construct: "adaptiveResponse"},
		Title:       "Develop Systematic Adaptive Capacity",
		Description: "Build learning and response mechanisms that help you adjust to disruptions while maintaining cultural values.",
		ActionSteps: []ActionStep{
			{Action: "Reflect on past disruptions and what worked", Timeframe: ThisWeek},
			{Action: "Create simple decision framework for responding to change", Timeframe: ThisMonth},
			{Action: "Identify early warning signs to monitor", Timeframe: ThisMonth},
			{Action: "Build relationships with others who can help in crisis", Timeframe: Ongoing},
		},
		Impact:   "Highest discriminatory power for resilience (+64.7%)",
		Priority: PriorityCritical,
	},
}

var communityInvolvementVariants = []Variant{
	{
		ID: "comm-individual",
		Context: VariantContext{
			Construct: "communityInvolvement",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
		},
		Title:       "Build Your Community Advisory Circle",
		Description: "Gather a small circle of community members and fellow practitioners who review your direction and keep your work grounded.",
		ActionSteps: []ActionStep{
			{Action: "List 5 community members whose judgment you trust", Timeframe: ThisWeek},
			{Action: "Invite 3 of them to an informal advisory conversation", Timeframe: ThisMonth},
			{Action: "Share work-in-progress for feedback before launches", Timeframe: Ongoing},
		},
		Impact:   "Ensures your work stays connected to community values",
		Priority: PriorityHigh,
	},
	{
		ID: "comm-org-new",
		Context: VariantContext{
			Construct: "communityInvolvement",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit, demographics.OrgCulturalInstitution},
		},
		Title:       "Establish Community Advisory Board",
		Description: "Create a formal advisory board with real influence over cultural decisions, compensated for their time and expertise.",
		ActionSteps: []ActionStep{
			{Action: "Define the board's mandate and decision rights", Timeframe: ThisMonth},
			{Action: "Recruit members representing source communities", Timeframe: ThisQuarter},
			{Action: "Budget honoraria for advisory participation", Timeframe: ThisMonth},
			{Action: "Schedule quarterly review of cultural decisions", Timeframe: Ongoing},
		},
		Impact:   "Key predictor of long-term success (+23.9%)",
		Priority: PriorityHigh,
	},
	{
		ID: "comm-coop-deepen",
		Context: VariantContext{
			Construct: "communityInvolvement",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCommunityOrg, demographics.OrgIndigenousEnterprise},
		},
		Title:       "Deepen Community Decision-Making",
		Description: "Move beyond consultation to genuine shared decision-making on strategy, not just operations.",
		ActionSteps: []ActionStep{
			{Action: "Audit which decisions currently involve the community", Timeframe: ThisMonth},
			{Action: "Open one strategic decision to community input", Timeframe: ThisQuarter},
			{Action: "Report back on how input shaped the outcome", Timeframe: ThisQuarter},
		},
		Impact:   "Strengthens legitimacy and long-term sustainability",
		Priority: PriorityMedium,
	},
	{
		ID:          "comm-default",
		Context:     VariantContext{Construct: "communityInvolvement"},
		Title:       "Establish Community Advisory Processes",
		Description: "Create regular, structured ways for community members to shape your direction and validate cultural choices.",
		ActionSteps: []ActionStep{
			{Action: "Identify the community voices missing from your decisions", Timeframe: ThisWeek},
			{Action: "Set up a recurring community feedback session", Timeframe: ThisMonth},
			{Action: "Document and act on the input you receive", Timeframe: Ongoing},
		},
		Impact:   "Key predictor of long-term success (+23.9 pp)",
		Priority: PriorityHigh,
	},
}

var culturalAuthenticityVariants = []Variant{
	{
		ID: "auth-forprofit",
		Context: VariantContext{
			Construct: "culturalAuthenticity",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit},
		},
		Title:       "Earn Community Validation",
		Description: "Build formal validation relationships with the source communities of the traditions you work with, before scaling products built on them.",
		ActionSteps: []ActionStep{
			{Action: "Map which traditions your products draw on and from whom", Timeframe: ThisWeek},
			{Action: "Seek review of current products from source-community practitioners", Timeframe: ThisMonth},
			{Action: "Create benefit-sharing agreement for products using community traditions", Timeframe: ThisQuarter},
		},
		Impact:   "Critical for market differentiation and avoiding appropriation claims",
		Priority: PriorityCritical,
	},
	{
		ID: "auth-community",
		Context: VariantContext{
			Construct: "culturalAuthenticity",
			OrgTypes: []demographics.OrganizationType{
				demographics.OrgCooperative, demographics.OrgCommunityOrg,
				demographics.OrgIndigenousEnterprise, demographics.OrgCraftGuild,
			},
		},
		Title:       "Formalize Cultural Protocols",
		Description: "Write down the cultural standards your members already hold, so authenticity survives growth and new membership.",
		ActionSteps: []ActionStep{
			{Action: "Convene elders and experienced members to articulate standards", Timeframe: ThisMonth},
			{Action: "Draft protocols for materials, techniques, and permitted adaptations", Timeframe: ThisQuarter},
			{Action: "Induct new members through the protocols", Timeframe: Ongoing},
		},
		Impact:   "Protects authenticity as you scale",
		Priority: PriorityHigh,
	},
	{
		ID:          "auth-default",
		Context:     VariantContext{Construct: "culturalAuthenticity"},
		Title:       "Ensure Community Validation",
		Description: "Establish regular validation of your work with culture bearers so innovation strengthens rather than dilutes tradition.",
		ActionSteps: []ActionStep{
			{Action: "Identify recognized culture bearers for your tradition", Timeframe: ThisWeek},
			{Action: "Request review of your current offerings", Timeframe: ThisMonth},
			{Action: "Incorporate feedback and credit contributors", Timeframe: Ongoing},
		},
		Impact:   "Critical for market differentiation and community trust",
		Priority: PriorityHigh,
	},
}

var ipProtectionVariants = []Variant{
	{
		ID: "ip-individual",
		Context: VariantContext{
			Construct: "ipProtection",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
		},
		Title:       "Protect Your Creative Work",
		Description: "Start with low-cost protections: document authorship, register designs where affordable, and watermark digital content.",
		ActionSteps: []ActionStep{
			{Action: "Photograph and date-stamp new work as you create it", Timeframe: ThisWeek},
			{Action: "Add copyright notices to your website and catalogs", Timeframe: ThisWeek},
			{Action: "Investigate design registration for signature pieces", Timeframe: ThisQuarter},
		},
		Impact:   "Prevents others from copying your work without credit",
		Priority: PriorityMedium,
	},
	{
		ID: "ip-community",
		Context: VariantContext{
			Construct: "ipProtection",
			OrgTypes: []demographics.OrganizationType{
				demographics.OrgCooperative, demographics.OrgCommunityOrg,
				demographics.OrgIndigenousEnterprise, demographics.OrgCraftGuild,
			},
		},
		Title:       "Collective IP Protection Strategy",
		Description: "Pursue collective marks, geographical indications, or certification marks that protect the whole community's tradition.",
		ActionSteps: []ActionStep{
			{Action: "Inventory the community's distinctive techniques and marks", Timeframe: ThisMonth},
			{Action: "Consult an IP clinic or legal aid on collective protections", Timeframe: ThisQuarter},
			{Action: "Agree internally on who may use the community's marks", Timeframe: ThisQuarter},
		},
		Impact:   "Protects entire community from exploitation",
		Priority: PriorityHigh,
	},
	{
		ID: "ip-forprofit",
		Context: VariantContext{
			Construct: "ipProtection",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit},
		},
		Title:       "Comprehensive IP Portfolio",
		Description: "Build a managed portfolio of trademarks, registered designs, and licensing agreements aligned with your growth markets.",
		ActionSteps: []ActionStep{
			{Action: "Audit existing brand assets and registrations", Timeframe: ThisMonth},
			{Action: "File trademarks in current and next target markets", Timeframe: ThisQuarter},
			{Action: "Standardize licensing terms for collaborations", Timeframe: ThisQuarter},
		},
		Impact:   "Protects brand value and ensures fair compensation",
		Priority: PriorityHigh,
	},
	{
		ID:          "ip-default",
		Context:     VariantContext{Construct: "ipProtection"},
		Title:       "Establish IP Protections",
		Description: "Put basic intellectual-property protections in place for your most distinctive work and marks.",
		ActionSteps: []ActionStep{
			{Action: "List your most copied or most distinctive assets", Timeframe: ThisWeek},
			{Action: "Document creation dates and authorship", Timeframe: ThisWeek},
			{Action: "Get advice on the cheapest effective protection available", Timeframe: ThisQuarter},
		},
		Impact:   "Prevents exploitation and ensures fair compensation",
		Priority: PriorityMedium,
	},
}

var communityDecisionMakingVariants = []Variant{
	{
		ID: "cdm-forprofit",
		Context: VariantContext{
			Construct: "communityDecisionMaking",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit},
		},
		Title:       "Share Decision Power with Community",
		Description: "Give source communities a genuine say in decisions about products built on their traditions.",
		ActionSteps: []ActionStep{
			{Action: "Identify decisions that affect source communities", Timeframe: ThisWeek},
			{Action: "Create a community seat in product-approval decisions", Timeframe: ThisQuarter},
			{Action: "Publish how community input changed outcomes", Timeframe: Ongoing},
		},
		Impact:   "Builds trust and long-term community support",
		Priority: PriorityHigh,
	},
	{
		ID: "cdm-coop",
		Context: VariantContext{
			Construct: "communityDecisionMaking",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild},
		},
		Title:       "Strengthen Democratic Governance",
		Description: "Refresh member participation: rotate leadership, lower barriers to voting, and make strategy sessions accessible to all members.",
		ActionSteps: []ActionStep{
			{Action: "Review participation rates in recent member votes", Timeframe: ThisWeek},
			{Action: "Schedule strategy sessions at times working members can attend", Timeframe: ThisMonth},
			{Action: "Introduce leadership rotation or term limits", Timeframe: ThisQuarter},
		},
		Impact:   "Strong predictor of sustainable outcomes (+33.7 pp)",
		Priority: PriorityHigh,
	},
	{
		ID: "cdm-indigenous",
		Context: VariantContext{
			Construct: "communityDecisionMaking",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndigenousEnterprise},
		},
		Title:       "Integrate Traditional Governance",
		Description: "Align enterprise decision-making with the community's traditional governance structures rather than running them in parallel.",
		ActionSteps: []ActionStep{
			{Action: "Map where enterprise and traditional governance currently diverge", Timeframe: ThisMonth},
			{Action: "Agree which decisions route through traditional structures", Timeframe: ThisQuarter},
			{Action: "Formalize the arrangement in enterprise bylaws", Timeframe: ThisQuarter},
		},
		Impact:   "Ensures cultural continuity in economic development",
		Priority: PriorityCritical,
	},
	{
		ID:          "cdm-default",
		Context:     VariantContext{Construct: "communityDecisionMaking"},
		Title:       "Enable Community Strategic Decisions",
		Description: "Create structured opportunities for the community to shape strategic direction, not just react to it.",
		ActionSteps: []ActionStep{
			{Action: "Pick one upcoming strategic decision to open up", Timeframe: ThisMonth},
			{Action: "Run an accessible input process for it", Timeframe: ThisQuarter},
			{Action: "Make the community's influence on the outcome visible", Timeframe: ThisQuarter},
		},
		Impact:   "Strong predictor of sustainable outcomes (+33.7 pp)",
		Priority: PriorityHigh,
	},
}

var productDevelopmentVariants = []Variant{
	{
		ID: "pd-solo",
		Context: VariantContext{
			Construct: "productDevelopment",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
		},
		Title:       "Create Your Innovation Rhythm",
		Description: "Set a light personal cadence for trying new pieces, techniques, or formats without disrupting your core production.",
		ActionSteps: []ActionStep{
			{Action: "Block one half-day per week for experimentation", Timeframe: ThisWeek},
			{Action: "Prototype one new piece or variation", Timeframe: ThisMonth},
			{Action: "Test it with a small set of trusted customers", Timeframe: ThisQuarter},
		},
		Impact:   "Keeps your work fresh and marketable",
		Priority: PriorityHigh,
	},
	{
		ID: "pd-coop",
		Context: VariantContext{
			Construct: "productDevelopment",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild},
		},
		Title:       "Collective Innovation Process",
		Description: "Run member-led innovation rounds where new designs are proposed, culturally reviewed, and market-tested together.",
		ActionSteps: []ActionStep{
			{Action: "Invite member proposals for new products", Timeframe: ThisMonth},
			{Action: "Review proposals against cultural protocols", Timeframe: ThisMonth},
			{Action: "Pilot the strongest proposals at the next market or fair", Timeframe: ThisQuarter},
		},
		Impact:   "Enables collective innovation while maintaining authenticity",
		Priority: PriorityHigh,
	},
	{
		ID: "pd-established",
		Context: VariantContext{
			Construct: "productDevelopment",
			Stages:    []demographics.BusinessStage{demographics.StageScaling, demographics.StageEstablished},
		},
		Title:       "Formalize Innovation Pipeline",
		Description: "Move from ad-hoc new products to a managed pipeline with stage gates for cultural review, costing, and launch.",
		ActionSteps: []ActionStep{
			{Action: "List every product idea currently in flight", Timeframe: ThisWeek},
			{Action: "Define pipeline stages and who approves each gate", Timeframe: ThisMonth},
			{Action: "Review the pipeline monthly and kill stalled ideas", Timeframe: Ongoing},
		},
		Impact:   "Drives economic value creation (+36.8 pp)",
		Priority: PriorityHigh,
	},
	{
		ID:          "pd-default",
		Context:     VariantContext{Construct: "productDevelopment"},
		Title:       "Establish Regular Innovation Cycles",
		Description: "Adopt a regular cycle of developing, culturally validating, and launching new offerings.",
		ActionSteps: []ActionStep{
			{Action: "Choose a realistic innovation cadence (quarterly works for most)", Timeframe: ThisWeek},
			{Action: "Develop one new offering this cycle", Timeframe: ThisQuarter},
			{Action: "Capture what sold and what didn't to guide the next cycle", Timeframe: Ongoing},
		},
		Impact:   "Drives economic value creation (+36.8 pp)",
		Priority: PriorityHigh,
	},
}

var intergenerationalPlanningVariants = []Variant{
	{
		ID: "ig-solo",
		Context: VariantContext{
			Construct: "intergenerationalPlanning",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndividual},
		},
		Title:       "Find and Nurture Your Successor",
		Description: "Identify who could carry your practice forward and start transferring knowledge deliberately rather than hoping it happens.",
		ActionSteps: []ActionStep{
			{Action: "List potential apprentices in your family or community", Timeframe: ThisWeek},
			{Action: "Offer a structured apprenticeship to one of them", Timeframe: ThisQuarter},
			{Action: "Document business relationships and suppliers for handover", Timeframe: ThisQuarter},
		},
		Impact:   "Ensures your knowledge and business can continue",
		Priority: PriorityHigh,
	},
	{
		ID: "ig-org",
		Context: VariantContext{
			Construct: "intergenerationalPlanning",
			OrgTypes: []demographics.OrganizationType{
				demographics.OrgCooperative, demographics.OrgCommunityOrg,
				demographics.OrgCraftGuild, demographics.OrgCulturalInstitution,
			},
		},
		Title:       "Youth Training & Succession Program",
		Description: "Build a standing program that brings young people into the craft and into governance, with clear progression.",
		ActionSteps: []ActionStep{
			{Action: "Survey members on succession risks in key roles", Timeframe: ThisMonth},
			{Action: "Launch a youth training cohort with stipends if possible", Timeframe: ThisQuarter},
			{Action: "Reserve a governance seat for emerging practitioners", Timeframe: ThisQuarter},
		},
		Impact:   "Critical for long-term cultural and business continuity",
		Priority: PriorityCritical,
	},
	{
		ID: "ig-indigenous",
		Context: VariantContext{
			Construct: "intergenerationalPlanning",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgIndigenousEnterprise},
		},
		Title:       "Cultural Transmission Program",
		Description: "Pair economic succession planning with structured cultural transmission from elders to youth.",
		ActionSteps: []ActionStep{
			{Action: "Convene elders and youth to design the program together", Timeframe: ThisMonth},
			{Action: "Schedule regular transmission sessions on the land or in practice", Timeframe: ThisQuarter},
			{Action: "Tie enterprise roles to demonstrated cultural competencies", Timeframe: Ongoing},
		},
		Impact:   "Ensures cultural and economic sovereignty for future generations",
		Priority: PriorityCritical,
	},
	{
		ID:          "ig-default",
		Context:     VariantContext{Construct: "intergenerationalPlanning"},
		Title:       "Develop Youth Training and Succession Plans",
		Description: "Create explicit plans for passing both the practice and the enterprise to the next generation.",
		ActionSteps: []ActionStep{
			{Action: "Write down what would be lost if key people left tomorrow", Timeframe: ThisWeek},
			{Action: "Start one structured training relationship", Timeframe: ThisQuarter},
			{Action: "Revisit the succession plan annually", Timeframe: Ongoing},
		},
		Impact:   "Essential for long-term sustainability",
		Priority: PriorityHigh,
	},
}

var digitalDistributionVariants = []Variant{
	{
		ID: "dd-new",
		Context: VariantContext{
			Construct: "digitalDistribution",
			Stages:    []demographics.BusinessStage{demographics.StageIdea, demographics.StageStartup},
		},
		Title:       "Start Your Digital Presence",
		Description: "Get a simple, story-rich digital storefront live before investing in complex channels.",
		ActionSteps: []ActionStep{
			{Action: "Choose one platform where your buyers already are", Timeframe: ThisWeek},
			{Action: "Photograph 5 products with their cultural stories", Timeframe: ThisMonth},
			{Action: "Publish and share with your existing network", Timeframe: ThisMonth},
		},
		Impact:   "Opens access to global markets at low cost",
		Priority: PriorityHigh,
	},
	{
		ID: "dd-growth",
		Context: VariantContext{
			Construct: "digitalDistribution",
			Stages:    []demographics.BusinessStage{demographics.StageGrowth, demographics.StageScaling},
		},
		Title:       "Scale Your Digital Channels",
		Description: "Move from marketplace dependence toward owned channels: your own store, email list, and direct relationships.",
		ActionSteps: []ActionStep{
			{Action: "Measure what share of sales each channel brings", Timeframe: ThisWeek},
			{Action: "Launch or upgrade your own web store", Timeframe: ThisQuarter},
			{Action: "Start a customer email list with a story-driven newsletter", Timeframe: ThisMonth},
		},
		Impact:   "Reduces dependence on intermediaries and marketplaces",
		Priority: PriorityMedium,
	},
	{
		ID: "dd-coop",
		Context: VariantContext{
			Construct: "digitalDistribution",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgCooperative, demographics.OrgCraftGuild},
		},
		Title:       "Collective Digital Platform",
		Description: "Pool resources into one shared digital storefront so every member reaches online buyers, not just the tech-comfortable few.",
		ActionSteps: []ActionStep{
			{Action: "Survey members on current digital capability and needs", Timeframe: ThisMonth},
			{Action: "Nominate and train a small digital team", Timeframe: ThisQuarter},
			{Action: "Launch shared storefront with per-member pages", Timeframe: ThisQuarter},
		},
		Impact:   "Enables digital access for members who couldn't do it alone",
		Priority: PriorityHigh,
	},
	{
		ID:          "dd-default",
		Context:     VariantContext{Construct: "digitalDistribution"},
		Title:       "Develop Digital Distribution Channels",
		Description: "Build digital channels that carry both your products and the cultural story behind them.",
		ActionSteps: []ActionStep{
			{Action: "Pick the single highest-potential digital channel", Timeframe: ThisWeek},
			{Action: "Create content pairing products with their stories", Timeframe: ThisMonth},
			{Action: "Review channel performance quarterly", Timeframe: Ongoing},
		},
		Impact:   "Expands market reach while telling your cultural story",
		Priority: PriorityMedium,
	},
}

var practitionerAccessVariants = []Variant{
	{
		ID: "pa-seeking",
		Context: VariantContext{
			Construct: "practitionerAccess",
			OrgTypes:  []demographics.OrganizationType{demographics.OrgForProfit, demographics.OrgCulturalInstitution},
		},
		Title:       "Build Practitioner Partnerships",
		Description: "Form compensated, credited partnerships with master practitioners instead of one-off consultations.",
		ActionSteps: []ActionStep{
			{Action: "Identify the master practitioners of your tradition", Timeframe: ThisWeek},
			{Action: "Propose an ongoing paid advisory or residency arrangement", Timeframe: ThisQuarter},
			{Action: "Credit practitioners visibly in products and marketing", Timeframe: Ongoing},
		},
		Impact:   "Grounds your work in living practice",
		Priority: PriorityHigh,
	},
	{
		ID:          "pa-default",
		Context:     VariantContext{Construct: "practitionerAccess"},
		Title:       "Strengthen Practitioner Networks",
		Description: "Deepen your working relationships with active tradition bearers and fellow practitioners.",
		ActionSteps: []ActionStep{
			{Action: "Map the practitioners you can currently call on", Timeframe: ThisWeek},
			{Action: "Join or convene a practitioner gathering", Timeframe: ThisQuarter},
			{Action: "Set up reciprocal skill-sharing with two peers", Timeframe: ThisQuarter},
		},
		Impact:   "Expands the living knowledge you can draw on",
		Priority: PriorityMedium,
	},
}
