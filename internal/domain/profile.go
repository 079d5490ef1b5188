package domain

// Tier awards Points when a measured value is at most Max.
type Tier struct {
	Max    int
	Points int
}

// Tail is the linear decay applied past the last tier: Points just past the
// last tier, reaching 0 at ZeroAt.
type Tail struct {
	Points int
	ZeroAt int
}

// ConcisenessTable holds the tiered thresholds of the conciseness metric.
type ConcisenessTable struct {
	LineTiers      []Tier
	LineTail       Tail
	TokenTiers     []Tier
	TokenTail      Tail
	BonusThreshold int // reference lines must exceed this for the bonus
	BonusPoints    int
}

// ComplexityTable holds per-unit points and caps of the complexity metric.
type ComplexityTable struct {
	FreeDepth         int
	PointsPerDepth    int
	MaxDepthPoints    int
	PointsPerResource int
	MaxResourcePoints int
	PointsPerCrossRef int
	MaxCrossRefPoints int
}

// ComplianceTable holds the fixed deductions of the spec compliance score.
type ComplianceTable struct {
	ErrorDeduction   int
	WarningDeduction int
}

// DisclosureTable holds the thresholds of the progressive disclosure metric.
type DisclosureTable struct {
	BodyBudget     int // body lines at or under this get full budget credit
	BodyZeroAt     int // body lines at which budget credit reaches 0
	BudgetPoints   int
	LinkedPoints   int
	OffloadPoints  int
	SmallBodyLines int // bodies this short need no offloading
}

// Limits bounds front-matter values.
type Limits struct {
	MaxNameLength        int
	MaxDescriptionLength int
}

// ScoringProfile carries every table the scorers and rules need.
// Built from defaults merged with .skillkraft.yaml overrides.
type ScoringProfile struct {
	Conciseness ConcisenessTable
	Complexity  ComplexityTable
	Compliance  ComplianceTable
	Disclosure  DisclosureTable
	Limits      Limits
	Weights     map[string]float64
}

// DefaultWeights are the composite weights. Complexity is applied inverted.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		MetricConciseness:           0.30,
		MetricComplexity:            0.15,
		MetricSpecCompliance:        0.35,
		MetricProgressiveDisclosure: 0.20,
	}
}

// DefaultProfile returns the documented scoring tables.
func DefaultProfile() ScoringProfile {
	return ScoringProfile{
		Conciseness: ConcisenessTable{
			LineTiers: []Tier{
				{Max: 150, Points: 50},
				{Max: 250, Points: 48},
				{Max: 350, Points: 45},
				{Max: 500, Points: 40},
				{Max: 750, Points: 25},
			},
			LineTail: Tail{Points: 10, ZeroAt: 1500},
			TokenTiers: []Tier{
				{Max: 1500, Points: 50},
				{Max: 2000, Points: 45},
				{Max: 3000, Points: 30},
			},
			TokenTail:      Tail{Points: 10, ZeroAt: 6000},
			BonusThreshold: 500,
			BonusPoints:    5,
		},
		Complexity: ComplexityTable{
			FreeDepth:         2,
			PointsPerDepth:    10,
			MaxDepthPoints:    40,
			PointsPerResource: 3,
			MaxResourcePoints: 30,
			PointsPerCrossRef: 3,
			MaxCrossRefPoints: 30,
		},
		Compliance: ComplianceTable{
			ErrorDeduction:   20,
			WarningDeduction: 5,
		},
		Disclosure: DisclosureTable{
			BodyBudget:     500,
			BodyZeroAt:     1000,
			BudgetPoints:   40,
			LinkedPoints:   30,
			OffloadPoints:  30,
			SmallBodyLines: 150,
		},
		Limits: Limits{
			MaxNameLength:        64,
			MaxDescriptionLength: 1024,
		},
		Weights: DefaultWeights(),
	}
}
