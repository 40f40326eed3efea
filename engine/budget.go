package engine

// TurnBudget tracks whose turn it is and how many action points remain. The
// decision core spends one action per call; the budget loop lives here.
type TurnBudget struct {
	budget       int
	CurrentIndex int
	MovesLeft    int
}

func NewTurnBudget(actionsPerTurn int) *TurnBudget {
	return &TurnBudget{
		budget:    actionsPerTurn,
		MovesLeft: actionsPerTurn,
	}
}

func (t *TurnBudget) Reset() {
	t.CurrentIndex = 0
	t.MovesLeft = t.budget
}

func (t *TurnBudget) SetIndex(idx int) {
	t.CurrentIndex = idx
	t.MovesLeft = t.budget
}

func (t *TurnBudget) Consume(amount int) {
	t.MovesLeft -= amount
}

func (t *TurnBudget) NeedsAdvance() bool {
	return t.MovesLeft <= 0
}

func (t *TurnBudget) Advance(totalFactions int) {
	t.CurrentIndex = (t.CurrentIndex + 1) % totalFactions
	t.MovesLeft = t.budget
}
