package followup

// Milestones 回访节点（签约后第N天）, ascending and fixed.
var Milestones = []int{7, 14, 30, 60, 90}

// FirstMilestone is the floor round: anything before day 7 (including
// contracts that have not started yet) is still working toward round 7.
const FirstMilestone = 7

// IsMilestone reports whether daysUsed lands exactly on a check-in day.
func IsMilestone(daysUsed int) bool {
	for _, m := range Milestones {
		if daysUsed == m {
			return true
		}
	}
	return false
}

// CurrentRound returns the round a customer/branch pair is in for the given
// elapsed days: the greatest milestone <= daysUsed, floored at 7.
func CurrentRound(daysUsed int) int {
	round := FirstMilestone
	for _, m := range Milestones {
		if daysUsed >= m {
			round = m
		}
	}
	return round
}
