package obfuscate

type mockedTap struct {
	requests RequestChannel
	isOpen   bool
}

func newMockedTap() *mockedTap {
	return &mockedTap{
		requests: make(RequestChannel),
	}
}

func (m *mockedTap) IsOpen() bool {
	return m.isOpen
}

func (m *mockedTap) Requests() RequestChannel {
	return m.requests
}

func (m *mockedTap) Open() {
	m.isOpen = true
}

func (m *mockedTap) Push(wUnits ...*WorkUnit) {
	for _, wu := range wUnits {
		m.requests <- wu
	}
}

func (m *mockedTap) Close() {
	m.isOpen = false
}
