package sim

import (
	"fmt"
	"os"
	"sort"
)

// A PortOwner is an element that communicates with others through ports,
// without necessarily being a ticking Component (e.g. a Domain).
type PortOwner interface {
	AddPort(name string, port Port)
	GetPortByName(name string) Port
	Ports() []Port
}

// PortOwnerBase implements PortOwner.
type PortOwnerBase struct {
	ports map[string]Port
}

// NewPortOwnerBase creates a PortOwnerBase.
func NewPortOwnerBase() *PortOwnerBase {
	return &PortOwnerBase{ports: make(map[string]Port)}
}

// AddPort registers a port under the given name.
func (po *PortOwnerBase) AddPort(name string, port Port) {
	if _, found := po.ports[name]; found {
		panic("port already exists")
	}

	po.ports[name] = port
}

// GetPortByName returns the port with the given name, panicking if it does
// not exist.
func (po PortOwnerBase) GetPortByName(name string) Port {
	port, found := po.ports[name]
	if !found {
		errMsg := fmt.Sprintf("Port %s is not available.\n", name)
		errMsg += "Available ports include:\n"
		for n := range po.ports {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}
		fmt.Fprint(os.Stderr, errMsg)

		panic("port not found")
	}

	return port
}

// Ports returns every port owned, sorted by name.
func (po PortOwnerBase) Ports() []Port {
	names := make([]string, 0, len(po.ports))
	for n := range po.ports {
		names = append(names, n)
	}

	sort.Strings(names)

	list := make([]Port, 0, len(po.ports))
	for _, n := range names {
		list = append(list, po.ports[n])
	}

	return list
}
