// Package content holds the fixed display tables of the landing page.
//
// The tables are package-level values and never change after init; the
// accessor functions return copies so callers cannot mutate them.
package content

// Icon names a glyph from the page's icon set.
type Icon string

const (
	IconNone        Icon = ""
	IconBrain       Icon = "brain"
	IconBarChart    Icon = "bar-chart-3"
	IconClock       Icon = "clock"
	IconShield      Icon = "shield"
	IconCheckCircle Icon = "check-circle"
	IconTarget      Icon = "target"
	IconTrophy      Icon = "trophy"
	IconZap         Icon = "zap"
	IconUsers       Icon = "users"
	IconStar        Icon = "star"
)

var knownIcons = map[Icon]bool{
	IconBrain: true, IconBarChart: true, IconClock: true, IconShield: true,
	IconCheckCircle: true, IconTarget: true, IconTrophy: true, IconZap: true,
	IconUsers: true, IconStar: true,
}

// Valid reports whether i is part of the icon set.
func (i Icon) Valid() bool {
	return knownIcons[i]
}

// Color is a palette name shared by icon tints and gradient stops.
type Color string

const (
	Blue    Color = "blue"
	Cyan    Color = "cyan"
	Green   Color = "green"
	Emerald Color = "emerald"
	Orange  Color = "orange"
	Yellow  Color = "yellow"
	Purple  Color = "purple"
	Pink    Color = "pink"
)

// Gradient is a two-stop left-to-right color gradient.
type Gradient struct {
	From Color `json:"from"`
	To   Color `json:"to"`
}

type StatEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FeatureEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	Tint        Color  `json:"tint"`
}

type TestTypeEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        Icon     `json:"icon"`
	Tint        Color    `json:"tint"`
	Gradient    Gradient `json:"gradient"`
}

type BenefitEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
}

var stats = [...]StatEntry{
	{Label: "Tests Created", Value: "10K+"},
	{Label: "Active Users", Value: "5K+"},
	{Label: "Success Rate", Value: "98%"},
	{Label: "Avg Score", Value: "85%"},
}

var features = [...]FeatureEntry{
	{
		Title:       "Smart Testing",
		Description: "Create intelligent tests with adaptive questioning and real-time feedback",
		Icon:        IconBrain,
		Tint:        Blue,
	},
	{
		Title:       "Advanced Analytics",
		Description: "Track performance with detailed analytics and progress insights",
		Icon:        IconBarChart,
		Tint:        Green,
	},
	{
		Title:       "Timed Assessments",
		Description: "Set time limits and create pressure-tested evaluation environments",
		Icon:        IconClock,
		Tint:        Orange,
	},
	{
		Title:       "Secure Testing",
		Description: "Enterprise-grade security with anti-cheating measures and data protection",
		Icon:        IconShield,
		Tint:        Purple,
	},
}

var testTypes = [...]TestTypeEntry{
	{
		Title:       "Knowledge Tests",
		Description: "Assess understanding with multiple choice, true/false, and short answer questions",
		Icon:        IconCheckCircle,
		Tint:        Blue,
		Gradient:    Gradient{From: Blue, To: Cyan},
	},
	{
		Title:       "Skill Assessments",
		Description: "Evaluate practical abilities with hands-on challenges and scenarios",
		Icon:        IconTarget,
		Tint:        Green,
		Gradient:    Gradient{From: Green, To: Emerald},
	},
	{
		Title:       "Certification Exams",
		Description: "Create professional certification tests with detailed scoring",
		Icon:        IconTrophy,
		Tint:        Yellow,
		Gradient:    Gradient{From: Yellow, To: Orange},
	},
	{
		Title:       "Practice Quizzes",
		Description: "Build engaging practice sessions with instant feedback",
		Icon:        IconZap,
		Tint:        Purple,
		Gradient:    Gradient{From: Purple, To: Pink},
	},
}

var benefits = [...]BenefitEntry{
	{
		Title:       "Easy Test Creation",
		Description: "Intuitive interface for creating tests in minutes, not hours",
		Icon:        IconBrain,
	},
	{
		Title:       "Real-time Results",
		Description: "Instant scoring and feedback for immediate learning insights",
		Icon:        IconZap,
	},
	{
		Title:       "Progress Tracking",
		Description: "Monitor improvement over time with detailed analytics",
		Icon:        IconBarChart,
	},
	{
		Title:       "Team Collaboration",
		Description: "Share tests and results with team members and instructors",
		Icon:        IconUsers,
	},
}

func Stats() []StatEntry         { return append([]StatEntry(nil), stats[:]...) }
func Features() []FeatureEntry   { return append([]FeatureEntry(nil), features[:]...) }
func TestTypes() []TestTypeEntry { return append([]TestTypeEntry(nil), testTypes[:]...) }
func Benefits() []BenefitEntry   { return append([]BenefitEntry(nil), benefits[:]...) }

// Tables is a snapshot of every content table, in page order.
type Tables struct {
	Stats     []StatEntry     `json:"stats"`
	Features  []FeatureEntry  `json:"features"`
	TestTypes []TestTypeEntry `json:"test_types"`
	Benefits  []BenefitEntry  `json:"benefits"`
}

// Default returns the tables the landing page ships with.
func Default() Tables {
	return Tables{
		Stats:     Stats(),
		Features:  Features(),
		TestTypes: TestTypes(),
		Benefits:  Benefits(),
	}
}
