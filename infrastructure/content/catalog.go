package content

import (
	"learngraph/domain/core/entities"
	"learngraph/domain/core/valueobjects"
)

// Catalog assembles the static mathematics curriculum. Records are declared
// in registration order; each concept declares its own prerequisites and the
// reverse edges are derived when the curriculum is frozen.
func Catalog() []entities.ConceptInput {
	return []entities.ConceptInput{
		// Foundation
		{
			ID:            "whole-numbers",
			Name:          "Whole Numbers",
			Layer:         valueobjects.LayerFoundation,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "The counting numbers and zero, with place value and comparison.",
			Visualization: valueobjects.VisualizationNumberLine,
			Metadata:      entities.MetadataInput{Difficulty: 1, EstimatedTime: "30 mins", Tags: []string{"numbers"}},
		},
		{
			ID:            "fractions",
			Name:          "Fractions",
			Layer:         valueobjects.LayerFoundation,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "Parts of a whole, equivalence, and fraction arithmetic.",
			Visualization: valueobjects.VisualizationNumberLine,
			Prerequisites: []string{"whole-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour", Tags: []string{"numbers"}},
		},
		{
			ID:            "decimals",
			Name:          "Decimals",
			Layer:         valueobjects.LayerFoundation,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "Decimal notation and conversion between fractions and decimals.",
			Visualization: valueobjects.VisualizationNumberLine,
			Prerequisites: []string{"fractions"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "45 mins"},
		},
		{
			ID:            "negative-numbers",
			Name:          "Negative Numbers",
			Layer:         valueobjects.LayerFoundation,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "Integers below zero and signed arithmetic.",
			Visualization: valueobjects.VisualizationNumberLine,
			Prerequisites: []string{"whole-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 1, EstimatedTime: "30 mins"},
		},
		{
			ID:            "order-of-operations",
			Name:          "Order of Operations",
			Layer:         valueobjects.LayerFoundation,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "The precedence rules governing compound arithmetic expressions.",
			Visualization: valueobjects.VisualizationSymbolic,
			Prerequisites: []string{"whole-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "30 mins"},
		},

		// Core
		{
			ID:            "exponents",
			Name:          "Exponents and Roots",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainArithmetic,
			Definition:    "Repeated multiplication, integer powers, and square roots.",
			Visualization: valueobjects.VisualizationSymbolic,
			Prerequisites: []string{"order-of-operations"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "45 mins"},
		},
		{
			ID:            "variables-and-expressions",
			Name:          "Variables and Expressions",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Symbols standing for unknown quantities and the expressions built from them.",
			Visualization: valueobjects.VisualizationSymbolic,
			Prerequisites: []string{"order-of-operations", "negative-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour", Tags: []string{"algebra-basics"}},
		},
		{
			ID:            "linear-equations",
			Name:          "Linear Equations",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Solving first-degree equations in one variable.",
			Visualization: valueobjects.VisualizationSymbolic,
			Prerequisites: []string{"variables-and-expressions"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour 30 mins", Tags: []string{"algebra-basics"}},
		},
		{
			ID:            "inequalities",
			Name:          "Inequalities",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Ordering relations and solution sets on the number line.",
			Visualization: valueobjects.VisualizationNumberLine,
			Prerequisites: []string{"linear-equations"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "45 mins"},
		},
		{
			ID:            "coordinate-plane",
			Name:          "The Coordinate Plane",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainGeometry,
			Definition:    "Ordered pairs, quadrants, and plotting points.",
			Visualization: valueobjects.VisualizationGeometric,
			Prerequisites: []string{"negative-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 1, EstimatedTime: "30 mins"},
		},
		{
			ID:            "graphing-lines",
			Name:          "Graphing Lines",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Slope, intercepts, and the graph of a linear equation.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"linear-equations", "coordinate-plane"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour"},
		},
		{
			ID:            "angles",
			Name:          "Angles",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainGeometry,
			Definition:    "Angle measurement, complementary and supplementary pairs.",
			Visualization: valueobjects.VisualizationGeometric,
			Prerequisites: []string{"whole-numbers"},
			Metadata:      entities.MetadataInput{Difficulty: 1, EstimatedTime: "45 mins"},
		},
		{
			ID:            "triangles",
			Name:          "Triangles",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainGeometry,
			Definition:    "Triangle classification, angle sums, and congruence.",
			Visualization: valueobjects.VisualizationGeometric,
			Prerequisites: []string{"angles"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour"},
		},
		{
			ID:            "data-representation",
			Name:          "Data Representation",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainStatistics,
			Definition:    "Tables, bar charts, and histograms for summarizing data.",
			Visualization: valueobjects.VisualizationDataChart,
			Prerequisites: []string{"fractions"},
			Metadata:      entities.MetadataInput{Difficulty: 1, EstimatedTime: "45 mins"},
		},
		{
			ID:            "probability",
			Name:          "Probability",
			Layer:         valueobjects.LayerCore,
			Domain:        valueobjects.DomainStatistics,
			Definition:    "Chance experiments, outcomes, and basic probability rules.",
			Visualization: valueobjects.VisualizationDataChart,
			Prerequisites: []string{"fractions"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "1 hour"},
		},

		// Intermediate
		{
			ID:            "pythagorean-theorem",
			Name:          "The Pythagorean Theorem",
			Layer:         valueobjects.LayerIntermediate,
			Domain:        valueobjects.DomainGeometry,
			Definition:    "The relation between the sides of a right triangle.",
			Visualization: valueobjects.VisualizationGeometric,
			Prerequisites: []string{"triangles", "exponents"},
			Metadata:      entities.MetadataInput{Difficulty: 2, EstimatedTime: "45 mins"},
		},
		{
			ID:            "quadratic-equations",
			Name:          "Quadratic Equations",
			Layer:         valueobjects.LayerIntermediate,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Second-degree equations, factoring, and the quadratic formula.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"linear-equations", "exponents"},
			Metadata:      entities.MetadataInput{Difficulty: 3, EstimatedTime: "2 hours"},
		},
		{
			ID:            "functions",
			Name:          "Functions",
			Layer:         valueobjects.LayerIntermediate,
			Domain:        valueobjects.DomainFunctions,
			Definition:    "Input-output relations, domain, range, and function notation.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"graphing-lines"},
			Metadata:      entities.MetadataInput{Difficulty: 3, EstimatedTime: "1 hour 30 mins"},
		},
		{
			ID:            "polynomials",
			Name:          "Polynomials",
			Layer:         valueobjects.LayerIntermediate,
			Domain:        valueobjects.DomainAlgebra,
			Definition:    "Polynomial arithmetic, roots, and end behavior.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"quadratic-equations"},
			Metadata:      entities.MetadataInput{Difficulty: 3, EstimatedTime: "1 hour"},
		},
		{
			ID:            "trigonometric-ratios",
			Name:          "Trigonometric Ratios",
			Layer:         valueobjects.LayerIntermediate,
			Domain:        valueobjects.DomainTrigonometry,
			Definition:    "Sine, cosine, and tangent on right triangles and the unit circle.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"pythagorean-theorem", "functions"},
			Metadata:      entities.MetadataInput{Difficulty: 3, EstimatedTime: "1 hour 30 mins"},
		},

		// Advanced
		{
			ID:            "limits",
			Name:          "Limits",
			Layer:         valueobjects.LayerAdvanced,
			Domain:        valueobjects.DomainCalculus,
			Definition:    "The behavior of a function as its input approaches a value.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"functions"},
			Metadata:      entities.MetadataInput{Difficulty: 4, EstimatedTime: "2 hours", Tags: []string{"calculus"}},
		},
		{
			ID:            "derivatives",
			Name:          "Derivatives",
			Layer:         valueobjects.LayerAdvanced,
			Domain:        valueobjects.DomainCalculus,
			Definition:    "Instantaneous rates of change and differentiation rules.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"limits", "polynomials"},
			Metadata:      entities.MetadataInput{Difficulty: 4, EstimatedTime: "2 hours 30 mins", Tags: []string{"calculus"}},
		},
		{
			ID:            "integrals",
			Name:          "Integrals",
			Layer:         valueobjects.LayerAdvanced,
			Domain:        valueobjects.DomainCalculus,
			Definition:    "Accumulation, area under curves, and the fundamental theorem.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"derivatives"},
			Metadata:      entities.MetadataInput{Difficulty: 5, EstimatedTime: "3 hours", Tags: []string{"calculus"}},
		},
		{
			ID:            "distributions",
			Name:          "Probability Distributions",
			Layer:         valueobjects.LayerAdvanced,
			Domain:        valueobjects.DomainStatistics,
			Definition:    "Random variables and the shape of common distributions.",
			Visualization: valueobjects.VisualizationDataChart,
			Prerequisites: []string{"probability", "data-representation"},
			// Modeling builds on distributions even though it only declares
			// its calculus prerequisites; the hint fills in the edge.
			Enables:  []string{"mathematical-modeling"},
			Metadata: entities.MetadataInput{Difficulty: 4, EstimatedTime: "2 hours"},
		},

		// Frontier
		{
			ID:            "differential-equations",
			Name:          "Differential Equations",
			Layer:         valueobjects.LayerFrontier,
			Domain:        valueobjects.DomainCalculus,
			Definition:    "Equations relating a function to its derivatives.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"integrals"},
			Metadata:      entities.MetadataInput{Difficulty: 5, EstimatedTime: "4 hours"},
		},
		{
			ID:            "mathematical-modeling",
			Name:          "Mathematical Modeling",
			Layer:         valueobjects.LayerFrontier,
			Domain:        valueobjects.DomainCalculus,
			Definition:    "Building and interpreting quantitative models of real systems.",
			Visualization: valueobjects.VisualizationFunctionPlot,
			Prerequisites: []string{"derivatives"},
			Metadata:      entities.MetadataInput{Difficulty: 5, EstimatedTime: "3 hours"},
		},
	}
}
