package monitor

// Store holds the last seen property view of every device on one source.
// Each Store belongs to exactly one source goroutine, so no locking is
// needed as long as that stays true.
type Store struct {
	views map[string]View
}

func NewStore() *Store {
	return &Store{views: make(map[string]View)}
}

func (s *Store) Put(devpath string, v View) {
	s.views[devpath] = v
}

func (s *Store) Get(devpath string) (View, bool) {
	v, ok := s.views[devpath]
	return v, ok
}

// Delete drops the device's snapshot. Deleting an unknown device is a
// no-op.
func (s *Store) Delete(devpath string) {
	delete(s.views, devpath)
}

// Len returns the number of tracked devices.
func (s *Store) Len() int {
	return len(s.views)
}
