package mem

import (
	"sync"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/normalize"
)

// Cache keeps the last computed report and indexes its teams by hostel code.
type Cache struct {
	mu     sync.RWMutex
	valid  bool
	report domain.Report
	teams  map[string]int
}

func New() *Cache {
	return &Cache{
		teams: make(map[string]int),
	}
}

func (c *Cache) Update(report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teams = make(map[string]int)
	for i := range report.Standings {
		code := normalize.Code(report.Standings[i].Team.HostelCode)
		c.teams[code] = i
	}
	c.report = report
	c.valid = true
}

func (c *Cache) Report() (domain.Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.report, c.valid
}

// GetTeam returns the standing and match history of the team with the given
// hostel code, matched case-insensitively.
func (c *Cache) GetTeam(code string) (domain.TeamDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.teams[normalize.Code(code)]
	if !ok {
		return domain.TeamDetail{}, false
	}
	detail := domain.TeamDetail{Standing: c.report.Standings[i]}
	for _, h := range c.report.Histories {
		if h.HostelCode == detail.Standing.Team.HostelCode {
			detail.History = h
			break
		}
	}
	return detail, true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.report = domain.Report{}
	c.teams = make(map[string]int)
}
