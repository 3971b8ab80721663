package content

import "fmt"

// NoID is the registry identifier for nodes without one of their own.
const NoID = "noID"

// CardKind selects one of the four card grids.
type CardKind int

const (
	StatCard CardKind = iota
	FeatureCard
	TestTypeCard
	BenefitCard
)

var cardPrefixes = map[CardKind]string{
	StatCard:     "stat-card",
	FeatureCard:  "feature-card",
	TestTypeCard: "test-type-card",
	BenefitCard:  "benefit-card",
}

// cardCounts mirrors the table lengths; a card ID exists only for an index
// that has a row behind it.
var cardCounts = map[CardKind]int{
	StatCard:     len(stats),
	FeatureCard:  len(features),
	TestTypeCard: len(testTypes),
	BenefitCard:  len(benefits),
}

// CardID returns the registry identifier of the card at index in the grid of
// the given kind, or NoID when there is no such card.
func CardID(kind CardKind, index int) string {
	prefix, ok := cardPrefixes[kind]
	if !ok || index < 0 || index >= cardCounts[kind] {
		return NoID
	}
	return fmt.Sprintf("%s-%d", prefix, index)
}

func StatCardID(index int) string     { return CardID(StatCard, index) }
func FeatureCardID(index int) string  { return CardID(FeatureCard, index) }
func TestTypeCardID(index int) string { return CardID(TestTypeCard, index) }
func BenefitCardID(index int) string  { return CardID(BenefitCard, index) }
