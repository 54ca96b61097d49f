package sim

// Simulation tracks every component and port that has been built into a
// running scenario, so they can be looked up by name later (e.g. by a
// monitoring endpoint or a trace reader).
type Simulation struct {
	components    []Component
	compNameIndex map[string]int
	ports         []Port
	portNameIndex map[string]int
}

// NewSimulation creates an empty Simulation registry.
func NewSimulation() *Simulation {
	return &Simulation{
		compNameIndex: make(map[string]int),
		portNameIndex: make(map[string]int),
	}
}

// RegisterComponent adds a component to the registry. Its ports are not
// registered; each is added separately with RegisterPort.
func (s *Simulation) RegisterComponent(c Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1
}

// RegisterPort adds a port to the registry.
func (s *Simulation) RegisterPort(p Port) {
	portName := p.Name()
	if _, found := s.portNameIndex[portName]; found {
		panic("port " + portName + " already registered")
	}

	s.ports = append(s.ports, p)
	s.portNameIndex[portName] = len(s.ports) - 1
}

// GetComponentByName returns the component registered under name.
func (s *Simulation) GetComponentByName(name string) Component {
	return s.components[s.compNameIndex[name]]
}

// GetPortByName returns the port registered under name.
func (s *Simulation) GetPortByName(name string) Port {
	return s.ports[s.portNameIndex[name]]
}
