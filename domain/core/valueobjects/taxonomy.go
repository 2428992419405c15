package valueobjects

// Layer places a concept on the curriculum's vertical axis. The five values
// are ordered from foundational material to research-adjacent topics.
type Layer string

const (
	LayerFoundation   Layer = "foundation"
	LayerCore         Layer = "core"
	LayerIntermediate Layer = "intermediate"
	LayerAdvanced     Layer = "advanced"
	LayerFrontier     Layer = "frontier"
)

// layerOrder fixes the ordering of the closed Layer enumeration
var layerOrder = map[Layer]int{
	LayerFoundation:   0,
	LayerCore:         1,
	LayerIntermediate: 2,
	LayerAdvanced:     3,
	LayerFrontier:     4,
}

// IsValid reports whether the layer is one of the five known values
func (l Layer) IsValid() bool {
	_, ok := layerOrder[l]
	return ok
}

// Order returns the layer's position in the enumeration, foundation first
func (l Layer) Order() int {
	return layerOrder[l]
}

// Layers returns all layers in curriculum order
func Layers() []Layer {
	return []Layer{LayerFoundation, LayerCore, LayerIntermediate, LayerAdvanced, LayerFrontier}
}

// Domain tags a concept with the area of mathematics it belongs to
type Domain string

const (
	DomainArithmetic   Domain = "arithmetic"
	DomainAlgebra      Domain = "algebra"
	DomainGeometry     Domain = "geometry"
	DomainTrigonometry Domain = "trigonometry"
	DomainFunctions    Domain = "functions"
	DomainCalculus     Domain = "calculus"
	DomainStatistics   Domain = "statistics"
)

var validDomains = map[Domain]struct{}{
	DomainArithmetic:   {},
	DomainAlgebra:      {},
	DomainGeometry:     {},
	DomainTrigonometry: {},
	DomainFunctions:    {},
	DomainCalculus:     {},
	DomainStatistics:   {},
}

// IsValid reports whether the domain is part of the closed tag set
func (d Domain) IsValid() bool {
	_, ok := validDomains[d]
	return ok
}

// Visualization names the widget kind a concept can be rendered with.
// Every concept must declare one; "symbolic" is the fallback for concepts
// with no dedicated plot.
type Visualization string

const (
	VisualizationNumberLine   Visualization = "number-line"
	VisualizationFunctionPlot Visualization = "function-plot"
	VisualizationGeometric    Visualization = "geometric"
	VisualizationDataChart    Visualization = "data-chart"
	VisualizationSymbolic     Visualization = "symbolic"
)

var validVisualizations = map[Visualization]struct{}{
	VisualizationNumberLine:   {},
	VisualizationFunctionPlot: {},
	VisualizationGeometric:    {},
	VisualizationDataChart:    {},
	VisualizationSymbolic:     {},
}

// IsValid reports whether the visualization marker is known
func (v Visualization) IsValid() bool {
	_, ok := validVisualizations[v]
	return ok
}
