package field

// Learning rate divisor applied to the background head: it only has to fit a
// smooth environment color and diverges when trained at the full rate.
const bkgdLRDivisor = 10.0

// A parameter group exported towards an external optimizer: one per enabled
// sub-network, each with its own learning rate. This is a configuration
// surface; the optimizer reaches the actual weights through the backend it
// was constructed with.
type ParamGroup struct {
	Name       string
	LR         float32
	ParamCount int
}

// Export one parameter group per enabled sub-network at the given base
// learning rate. The background head trains at a tenth of the base rate.
func (f *RadianceField) ParamGroups(lr float32) []ParamGroup {
	groups := []ParamGroup{
		{Name: "encoder", LR: lr, ParamCount: f.spatial.ParameterCount()},
		{Name: "sigma", LR: lr, ParamCount: f.sigma.ParameterCount()},
		{Name: "rgb", LR: lr, ParamCount: f.color.ParameterCount()},
	}
	if f.normal != nil {
		groups = append(groups, ParamGroup{Name: "normal", LR: lr, ParamCount: f.normal.ParameterCount()})
	}
	if f.background != nil {
		groups = append(groups, ParamGroup{Name: "bkgd", LR: lr / bkgdLRDivisor, ParamCount: f.background.ParameterCount()})
	}
	return groups
}
