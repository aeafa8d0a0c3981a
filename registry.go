package racp

import "github.com/sirupsen/logrus"

// A Service is a BLE service holding control-point characteristics.
// Calls to AddControlPoint must occur before the registry is built.
type Service struct {
	uuid  UUID
	chars []*Characteristic
}

// UUID returns the service's UUID.
func (s *Service) UUID() UUID {
	return s.uuid
}

// AddControlPoint adds a control-point characteristic to a service,
// writing through t. AddControlPoint panics if the service already
// contains another characteristic with the same UUID.
func (s *Service) AddControlPoint(u UUID, t Transport, opts ...ControlPointOption) *Characteristic {
	for _, char := range s.chars {
		if char.uuid.Equal(u) {
			panic("service already contains a characteristic with uuid " + u.String())
		}
	}

	char := &Characteristic{
		service: s,
		uuid:    u,
		cp:      NewControlPoint(t, opts...),
	}
	s.chars = append(s.chars, char)
	return char
}

// A Characteristic is a registered control-point characteristic.
type Characteristic struct {
	uuid    UUID
	service *Service
	cp      *ControlPoint
}

// UUID returns the characteristic's UUID.
func (c *Characteristic) UUID() UUID {
	return c.uuid
}

// ControlPoint returns the engine bound to this characteristic.
func (c *Characteristic) ControlPoint() *ControlPoint {
	return c.cp
}

// A RegistryBuilder assembles the service/characteristic table at
// startup. Build the table once, before wiring it to the BLE layer's
// notification delivery.
type RegistryBuilder struct {
	services []*Service
}

// NewRegistryBuilder returns an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// AddService adds a service with the given UUID.
func (b *RegistryBuilder) AddService(u UUID) *Service {
	svc := &Service{uuid: u}
	b.services = append(b.services, svc)
	return svc
}

// Build returns the immutable registry. Characteristic UUIDs must be
// unique across services, since GATT notification delivery is keyed
// by characteristic alone; Build panics on a duplicate.
func (b *RegistryBuilder) Build() *Registry {
	r := &Registry{
		services: b.services,
		byChar:   make(map[string]*Characteristic),
		log:      logrus.StandardLogger(),
	}
	for _, svc := range b.services {
		for _, char := range svc.chars {
			key := char.uuid.String()
			if _, ok := r.byChar[key]; ok {
				panic("registry already contains a characteristic with uuid " + key)
			}
			r.byChar[key] = char
		}
	}
	return r
}

// A Registry maps characteristic UUIDs to their control-point
// engines. It routes raw notification payloads from the BLE layer to
// the right engine and fans out disconnection.
type Registry struct {
	services []*Service
	byChar   map[string]*Characteristic
	log      logrus.FieldLogger
}

// Services returns the registered services.
func (r *Registry) Services() []*Service {
	return r.services
}

// ControlPoint looks up the engine bound to characteristic u.
func (r *Registry) ControlPoint(u UUID) (*ControlPoint, bool) {
	char, ok := r.byChar[u.String()]
	if !ok {
		return nil, false
	}
	return char.cp, true
}

// HandleNotification routes a raw payload delivered on characteristic
// u. Payloads for unregistered characteristics are logged and
// dropped.
func (r *Registry) HandleNotification(u UUID, p []byte) {
	char, ok := r.byChar[u.String()]
	if !ok {
		r.log.Debugf("racp: notification for unregistered characteristic %v", u)
		return
	}
	char.cp.HandleNotification(p)
}

// HandleDisconnect cancels the pending exchange, if any, on every
// registered control point.
func (r *Registry) HandleDisconnect() {
	for _, char := range r.byChar {
		char.cp.HandleDisconnect()
	}
}
