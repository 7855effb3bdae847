package entity

import "github.com/clubmate/backend/internal/domain/common/errorz"

type PlanID string

const (
	PlanBeta    PlanID = "BETA"
	PlanStarter PlanID = "STARTER"
	PlanPro     PlanID = "PRO"
)

// Plan is a subscription tier. Price is in minor currency units;
// a nil MaxTeams means the plan puts no cap on the number of teams.
type Plan struct {
	ID       PlanID
	Name     string
	Price    int64
	MaxTeams *int
}

func (p Plan) IsFree() bool {
	return p.Price == 0
}

var planCatalog = []Plan{
	{ID: PlanBeta, Name: "Beta", Price: 0, MaxTeams: intPtr(2)},
	{ID: PlanStarter, Name: "Starter", Price: 990, MaxTeams: intPtr(5)},
	{ID: PlanPro, Name: "Pro", Price: 2490, MaxTeams: nil},
}

// Plans returns the plan catalog in display order.
func Plans() []Plan {
	plans := make([]Plan, len(planCatalog))
	copy(plans, planCatalog)
	return plans
}

func PlanByID(id PlanID) (Plan, error) {
	for _, plan := range planCatalog {
		if plan.ID == id {
			return plan, nil
		}
	}
	return Plan{}, errorz.Validation("unknown plan: " + string(id))
}

func intPtr(v int) *int {
	return &v
}
