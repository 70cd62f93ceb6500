// Package eval provides structural evaluation of the decomposition
// operator: fixed datasets of problem statements with expected
// structural outcomes, and an evaluator that scores the operator
// against them.
package eval

// Case defines a single evaluation statement and the structural
// expectations checked against its decomposition.
type Case struct {
	Name        string         `json:"name"`
	Statement   string         `json:"statement"`
	Context     map[string]any `json:"context,omitempty"`
	Constraints []string       `json:"constraints,omitempty"`

	// Structural expectations. Zero values mean "not checked" except
	// ExpectComponents, which every case states.
	ExpectComponents    int    `json:"expect_components"`      // exact component count
	ExpectConstraints   int    `json:"expect_constraints"`     // exact constraint component count
	ExpectDependsOn     int    `json:"expect_depends_on"`      // exact depends_on edge count
	ExpectParallelWith  int    `json:"expect_parallel_with"`   // exact parallel_with edge count
	ExpectPathLen       int    `json:"expect_path_len"`        // exact critical path length
	ExpectLowConfidence bool   `json:"expect_low_confidence"`  // confidence below threshold
	ExpectWarning       string `json:"expect_warning,omitempty"` // substring required among warnings
}

// Dataset is a named collection of evaluation cases.
type Dataset struct {
	Name  string `json:"name"`
	Cases []Case `json:"cases"`
}

// StructuralDataset returns the builtin cases covering sequencing,
// parallelism, ambiguity, constraints, and the zero-signal fallback.
func StructuralDataset() Dataset {
	return Dataset{
		Name: "structural",
		Cases: []Case{
			{
				Name:             "sequential chain",
				Statement:        "Build A, then build B, then build C",
				ExpectComponents: 3,
				ExpectDependsOn:  2,
				ExpectPathLen:    3,
			},
			{
				Name:               "parallel pair",
				Statement:          "Design the API and write the tests",
				ExpectComponents:   2,
				ExpectParallelWith: 1,
				ExpectPathLen:      1,
			},
			{
				Name:                "high ambiguity",
				Statement:           "Do some stuff with some things",
				ExpectComponents:    2,
				ExpectLowConfidence: true,
				ExpectWarning:       "ambiguity",
			},
			{
				Name:              "explicit constraints",
				Statement:         "Build the ingestion service, then validate the outputs",
				Constraints:       []string{"rapid iteration", "empirical validation"},
				ExpectComponents:  4,
				ExpectConstraints: 2,
				ExpectDependsOn:   1,
			},
			{
				Name:             "zero signals fallback",
				Statement:        "Refactor the billing module",
				ExpectComponents: 1,
				ExpectPathLen:    1,
				ExpectWarning:    "no decomposition signals",
			},
			{
				Name:      "scoped delivery",
				Statement: "Deploy the dashboard and migrate the database, then audit access in 2 weeks",
				Context:   map[string]any{"team": "solo"},
				ExpectComponents: 3,
				ExpectDependsOn:  1,
			},
		},
	}
}
