package scheduler

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Vprince099/restaurant-scheduler/pkg/models"
)

// Result is the outcome of one auto-assign pass.
type Result struct {
	// Shifts holds one entry per input shift, in input order.
	Shifts        []models.ShiftInstance
	Unassigned    []string
	Conflicts     []models.ConflictReason
	Employees     map[string]models.EmployeeStats
	FairnessScore float64
}

// employeeState is the working copy of an employee during a pass
type employeeState struct {
	employee   models.Employee
	totalHours float64
	blocks     map[int][]window
	blockCount int
	shiftIDs   []string
}

func (e *employeeState) remaining() float64 {
	return e.employee.MaxHours - e.totalHours
}

// pass holds the state of a single assignment pass. It is built fresh
// for every call and never touches caller-owned slices.
type pass struct {
	catalog   *RoleCatalog
	employees []*employeeState
	conflicts []models.ConflictReason
}

func newPass(employees []models.Employee, roles []models.Role) *pass {
	s := &pass{
		catalog:   indexRoles(roles),
		employees: make([]*employeeState, len(employees)),
	}
	for i, e := range employees {
		s.employees[i] = &employeeState{
			employee: e,
			blocks:   make(map[int][]window),
		}
	}
	return s
}

// wouldOverlap checks if an employee's blocks on the day overlap w
func (s *pass) wouldOverlap(emp *employeeState, day int, w window) bool {
	for _, b := range emp.blocks[day] {
		if b.overlaps(w) {
			return true
		}
	}
	return false
}

// allows checks role qualification and availability for a shift
func (s *pass) allows(emp *employeeState, shift models.ShiftInstance) (hasRole, available bool) {
	hasRole = emp.employee.HasRole(shift.Role)
	available = emp.employee.Availability.Available(models.DayName(shift.Day), shift.Label)
	return hasRole, available
}

func (s *pass) assignTo(emp *employeeState, shift models.ShiftInstance, w window) {
	emp.totalHours += w.hours()
	emp.blocks[shift.Day] = append(emp.blocks[shift.Day], w)
	emp.blockCount++
	emp.shiftIDs = append(emp.shiftIDs, shift.ID)
}

// pick returns the best candidate for the shift, or nil, recording a conflict
// when nobody qualifies.
func (s *pass) pick(shift models.ShiftInstance, w window) *employeeState {
	var candidates []*employeeState
	roleCount, availCount, overlapCount, hoursCount := 0, 0, 0, 0

	for _, emp := range s.employees {
		hasRole, available := s.allows(emp, shift)
		if !hasRole {
			roleCount++
			continue
		}
		if !available {
			availCount++
			continue
		}
		if s.wouldOverlap(emp, shift.Day, w) {
			overlapCount++
			continue
		}
		if emp.totalHours+w.hours() > emp.employee.MaxHours {
			hoursCount++
			continue
		}
		candidates = append(candidates, emp)
	}

	if len(candidates) == 0 {
		var reasons []string
		if len(s.employees) == 0 {
			reasons = append(reasons, "no employees supplied")
		}
		if roleCount == len(s.employees) && roleCount > 0 {
			reasons = append(reasons, fmt.Sprintf("no employees hold the %s role", shift.Role))
		} else if roleCount > 0 {
			reasons = append(reasons, fmt.Sprintf("%d employees lack the %s role", roleCount, shift.Role))
		}
		if availCount > 0 {
			reasons = append(reasons, fmt.Sprintf("%d employees were unavailable", availCount))
		}
		if overlapCount > 0 {
			reasons = append(reasons, fmt.Sprintf("%d employees had overlapping shifts", overlapCount))
		}
		if hoursCount > 0 {
			reasons = append(reasons, fmt.Sprintf("%d employees were at max hours", hoursCount))
		}
		s.conflict(shift, reasons...)
		return nil
	}

	// Most hours left first, then fewest blocks; remaining ties keep employee order.
	slices.SortStableFunc(candidates, func(a, b *employeeState) int {
		if c := cmp.Compare(b.remaining(), a.remaining()); c != 0 {
			return c
		}
		return cmp.Compare(a.blockCount, b.blockCount)
	})
	return candidates[0]
}

func (s *pass) conflict(shift models.ShiftInstance, reasons ...string) {
	s.conflicts = append(s.conflicts, models.ConflictReason{
		ShiftID: shift.ID,
		Day:     shift.Day,
		Label:   shift.Label,
		Role:    shift.Role,
		Reasons: reasons,
	})
}

// processingOrder sorts shift indices by role priority (high first), day, then
// start time. The sort is stable so equal keys keep input order.
func (s *pass) processingOrder(shifts []models.ShiftInstance) []int {
	starts := make([]int, len(shifts))
	for i, sh := range shifts {
		m, err := ParseClock(sh.Start)
		if err != nil {
			m = minutesInvalid
		}
		starts[i] = m
	}
	order := make([]int, len(shifts))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(s.catalog.Priority(shifts[b].Role), s.catalog.Priority(shifts[a].Role)); c != 0 {
			return c
		}
		if c := cmp.Compare(shifts[a].Day, shifts[b].Day); c != 0 {
			return c
		}
		return cmp.Compare(starts[a], starts[b])
	})
	return order
}

func (s *pass) run(shifts []models.ShiftInstance) Result {
	out := make([]models.ShiftInstance, len(shifts))
	for i, sh := range shifts {
		out[i] = sh.WithEmployee("")
	}

	for _, idx := range s.processingOrder(out) {
		shift := out[idx]
		if _, ok := s.catalog.Lookup(shift.Role); !ok {
			s.conflict(shift, fmt.Sprintf("role %q is not defined", shift.Role))
			continue
		}
		if models.DayName(shift.Day) == "" {
			s.conflict(shift, fmt.Sprintf("day %d is out of range", shift.Day))
			continue
		}
		w, err := parseWindow(shift.Start, shift.End)
		if err != nil || w.end < w.start {
			s.conflict(shift, fmt.Sprintf("invalid shift times %s-%s", shift.Start, shift.End))
			continue
		}
		if best := s.pick(shift, w); best != nil {
			s.assignTo(best, shift, w)
			out[idx] = shift.WithEmployee(best.employee.ID)
		}
	}

	res := Result{
		Shifts:    out,
		Conflicts: s.conflicts,
		Employees: make(map[string]models.EmployeeStats, len(s.employees)),
	}
	for _, sh := range out {
		if !sh.Assigned() {
			res.Unassigned = append(res.Unassigned, sh.ID)
		}
	}
	hours := make([]float64, 0, len(s.employees))
	for _, emp := range s.employees {
		res.Employees[emp.employee.ID] = models.EmployeeStats{
			AssignedHours:  emp.totalHours,
			RemainingHours: emp.remaining(),
			AssignedShifts: append([]string{}, emp.shiftIDs...),
		}
		hours = append(hours, emp.totalHours)
	}
	res.FairnessScore = FairnessScore(hours)
	return res
}

// AssignWithReport staffs shifts greedily and explains every shift left open.
//
// Shifts are copied and cleared first, so re-running on previous output gives
// the same answer. An employee is a candidate when they hold the role, are
// available for the day and label, have no overlapping block that day, and stay
// within MaxHours. Unknown roles and infeasible shifts stay unassigned; this
// never fails.
func AssignWithReport(shifts []models.ShiftInstance, employees []models.Employee, roles []models.Role) Result {
	return newPass(employees, roles).run(shifts)
}

// Assign returns a copy of shifts with employees assigned.
func Assign(shifts []models.ShiftInstance, employees []models.Employee, roles []models.Role) []models.ShiftInstance {
	return AssignWithReport(shifts, employees, roles).Shifts
}
