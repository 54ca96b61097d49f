package backingstore

import "fmt"

// unitSize is the granularity at which Storage lazily allocates backing
// bytes. Addresses that are never touched by Read or Write never consume
// memory.
const unitSize = 4096

// Storage is a sparse, unit-paged byte store. It backs a Comp's timing
// model and is also reachable directly through ReadByte/WriteByte for
// functional (non-timing) accesses.
type Storage struct {
	capacity uint64
	data     map[uint64][]byte
}

// NewStorage creates a Storage with the given addressable capacity.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		capacity: capacity,
		data:     make(map[uint64][]byte),
	}
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % unitSize
	baseAddr = addr - inUnitAddr
	return baseAddr, inUnitAddr
}

func (s *Storage) createOrGetUnit(addr uint64) []byte {
	if addr >= s.capacity {
		panic(fmt.Sprintf(
			"address 0x%x is beyond the storage capacity of 0x%x", addr, s.capacity))
	}

	baseAddr, _ := s.parseAddress(addr)

	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, unitSize)
		s.data[baseAddr] = unit
	}

	return unit
}

// Read copies length bytes starting at address out of the store. Crossing
// a unit boundary is transparent to the caller.
func (s *Storage) Read(address, length uint64) []byte {
	res := make([]byte, length)

	currAddr := address
	dataOffset := uint64(0)

	for dataOffset < length {
		unit := s.createOrGetUnit(currAddr)
		_, inUnitAddr := s.parseAddress(currAddr)

		lenLeftInUnit := unitSize - inUnitAddr
		lenLeftToRead := length - dataOffset
		lenToRead := lenLeftInUnit
		if lenLeftToRead < lenToRead {
			lenToRead = lenLeftToRead
		}

		copy(res[dataOffset:dataOffset+lenToRead], unit[inUnitAddr:inUnitAddr+lenToRead])

		dataOffset += lenToRead
		currAddr += lenToRead
	}

	return res
}

// Write copies data into the store starting at address.
func (s *Storage) Write(address uint64, data []byte) {
	currAddr := address
	dataOffset := uint64(0)

	for dataOffset < uint64(len(data)) {
		unit := s.createOrGetUnit(currAddr)
		_, inUnitAddr := s.parseAddress(currAddr)

		lenLeftInUnit := unitSize - inUnitAddr
		lenLeftInData := uint64(len(data)) - dataOffset
		lenToWrite := lenLeftInUnit
		if lenLeftInData < lenToWrite {
			lenToWrite = lenLeftInData
		}

		copy(unit[inUnitAddr:inUnitAddr+lenToWrite], data[dataOffset:dataOffset+lenToWrite])

		dataOffset += lenToWrite
		currAddr += lenToWrite
	}
}
