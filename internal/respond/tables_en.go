package respond

import "github.com/insightlane/concierge/internal/classifier"

// English tables, mirroring the Polish copy one-to-one.

var (
	enStatusDefault = []string{"Analyzing your question…", "Building a response…"}
	enStatusROI     = []string{"Crunching the numbers…", "Running scenarios…", "Building a simulation…"}
	enStatusTech    = []string{"Checking the docs…", "Gathering technical details…", "Putting it together…"}
	enStatusTrial   = []string{"Preparing your access…", "One moment…"}
)

var enTables = &localeTables{
	bodies: map[classifier.Intent]string{
		classifier.IntentGeneralProduct: "Insightlane pulls your sales and marketing data into one dashboard and automatically points at what drives your results. Setup takes about 15 minutes.",
		classifier.IntentPricing:        "We offer three plans: Starter ($29/mo), Professional ($79/mo) and Enterprise (custom pricing). Every plan can be cancelled at any time, no notice period.",
		classifier.IntentROI:            "Our customers typically see a 3–5x return within the first quarter, mostly from cutting unprofitable channels. I can run a simulation on your numbers — a rough monthly budget is enough.",
		classifier.IntentIntegrations:   "We ship ready-made integrations with Shopify, Allegro, WooCommerce, PrestaShop and BaseLinker, among others. Connecting a store is one click plus authorization — data lands within an hour.",
		classifier.IntentSecurity:       "Data is encrypted at rest and in transit, every customer gets an isolated single-tenant space, and the whole platform is GDPR compliant. We never sell or share your data.",
		classifier.IntentTech:           "We provide a public REST API, webhooks and data warehouse export. SSO and SLA guarantees are part of the Enterprise plan. Request limits depend on your plan.",
		classifier.IntentHowAIWorks:     "The engine analyzes your historical sales and spend data, detects patterns and flags anomalies. It doesn't guess — every recommendation comes with the numbers that justify it.",
		classifier.IntentConfirmation:   "Great. Then let's get concrete — you'll see the most on your own data.",
		classifier.IntentRefusal:        "No problem, nothing to decide right now. If you want to come back to it, I'm here.",
		classifier.IntentClarification:  "Happy to clarify: every plan includes the full analytics dashboard, automated reports and support. The differences are in data sources, seats and API limits.",
		classifier.IntentComparison:     "Unlike classic BI tools you don't build reports yourself — you get ready answers. The quickest way to see the difference is a side-by-side on your own data.",
		classifier.IntentSkepticism:     "Fair to be cautious — that's why we don't ask for a card at signup. Every number I quote you can verify on a sample of your own data in the trial.",
		classifier.IntentUnintelligible: "I didn't quite get that. You can ask about pricing, integrations, or how our analytics works.",
		classifier.IntentCTATrial:       "Great! Creating a trial account takes a minute — no card, 14 days of full access. All you need is an email address.",
	},
	nextSteps: map[classifier.Intent]string{
		classifier.IntentGeneralProduct: "Want a quick demo on sample data?",
		classifier.IntentPricing:        "I can help pick a plan for your scale.",
		classifier.IntentROI:            "Give me a rough monthly budget and I'll run the simulation.",
		classifier.IntentIntegrations:   "Tell me which platform you use and I'll check the details.",
		classifier.IntentSecurity:       "I can send over the full security documentation.",
		classifier.IntentTech:           "Want a link to the API docs?",
		classifier.IntentHowAIWorks:     "I can show an example recommendation with its justification.",
		classifier.IntentConfirmation:   "Let's start by connecting your first data source.",
		classifier.IntentRefusal:        "Meanwhile, feel free to ask anything about the product.",
		classifier.IntentClarification:  "Ask away about any specific plan or feature.",
		classifier.IntentComparison:     "Want a feature comparison with a specific tool?",
		classifier.IntentSkepticism:     "You can also check customer reviews on our site.",
		classifier.IntentUnintelligible: "Try describing what you want to achieve in your own words.",
		classifier.IntentCTATrial:       "Click \"Create account\" in the top right corner of the page.",
	},
	preambles: map[classifier.Tone]string{
		classifier.ToneNeutral:    "",
		classifier.ToneCasual:     "Sure, here you go.",
		classifier.ToneFormal:     "Of course, here is a structured answer.",
		classifier.ToneSkeptical:  "I get the doubt, so no marketing promises:",
		classifier.ToneAggressive: "Understood. To the point:",
	},
	statuses: map[classifier.Intent][]string{
		classifier.IntentGeneralProduct: enStatusDefault,
		classifier.IntentPricing:        enStatusDefault,
		classifier.IntentROI:            enStatusROI,
		classifier.IntentIntegrations:   enStatusTech,
		classifier.IntentSecurity:       enStatusTech,
		classifier.IntentTech:           enStatusTech,
		classifier.IntentHowAIWorks:     enStatusTech,
		classifier.IntentConfirmation:   enStatusDefault,
		classifier.IntentRefusal:        enStatusDefault,
		classifier.IntentClarification:  enStatusDefault,
		classifier.IntentComparison:     enStatusDefault,
		classifier.IntentSkepticism:     enStatusDefault,
		classifier.IntentUnintelligible: enStatusDefault,
		classifier.IntentCTATrial:       enStatusTrial,
	},
	discountBody: "Right now annual billing gets you 2 months free. We occasionally send promo codes in the newsletter — signup is at the bottom of the page.",
	campaignBody: "The campaign module computes ROAS per channel and per creative, joining ad spend with actual sales. You'll see which campaigns really earn and which just get clicks.",
	planHint:     "I see you're interested in the %s plan — I can break down exactly what it includes.",
}
