package sim

import (
	"fmt"
	"os"
	"sync"
)

// A Named object has a name.
type Named interface {
	Name() string
}

// A Component is an element being simulated.
type Component interface {
	Named
	Handler
	Hookable

	GetPortByName(name string) Port

	// NotifyRecv is called when a port belonging to this component
	// receives a message.
	NotifyRecv(port Port)

	// NotifyPortFree is called when a port belonging to this component
	// frees up space, after being full, in its outgoing buffer.
	NotifyPortFree(port Port)
}

// ComponentBase provides the bookkeeping shared by every Component.
type ComponentBase struct {
	*HookableBase
	sync.Mutex

	name  string
	ports map[string]Port
}

// NewComponentBase creates a ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.HookableBase = NewHookableBase()
	c.name = name
	c.ports = make(map[string]Port)

	return c
}

// Name returns the component's name.
func (c *ComponentBase) Name() string {
	return c.name
}

// AddPort registers a port under the component.
func (c *ComponentBase) AddPort(name string, port Port) {
	c.Lock()
	defer c.Unlock()

	if _, found := c.ports[name]; found {
		panic("port already exists")
	}

	c.ports[name] = port
}

// GetPortByName returns the port with the given name, panicking if it does
// not exist.
func (c *ComponentBase) GetPortByName(name string) Port {
	c.Lock()
	defer c.Unlock()

	port, found := c.ports[name]
	if !found {
		errMsg := fmt.Sprintf("Port %s is not available on component %s.\n", name, c.name)
		errMsg += "Available ports include:\n"
		for n := range c.ports {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}
		fmt.Fprint(os.Stderr, errMsg)

		panic("port not found")
	}

	return port
}
