package sim

// A Domain groups a set of closely related components under one name,
// without being a ticking component itself.
type Domain struct {
	*PortOwnerBase

	name string
}

// NewDomain creates a Domain.
func NewDomain(name string) *Domain {
	NameMustBeValid(name)

	return &Domain{
		name:          name,
		PortOwnerBase: NewPortOwnerBase(),
	}
}

// Name returns the domain's name.
func (d Domain) Name() string {
	return d.name
}
