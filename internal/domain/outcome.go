package domain

// TaskStatus classifica o desfecho de uma tarefa de um lote (produto na
// fase de detecção, promoção na fase de indicadores).
type TaskStatus string

const (
	TaskSucceeded TaskStatus = "succeeded"
	TaskSkipped   TaskStatus = "skipped"
	TaskFailed    TaskStatus = "failed"
)

// TaskOutcome é o resultado tipado de uma tarefa, agregado pelo
// agendador para o resumo da execução.
type TaskOutcome struct {
	Key    string     `json:"key"`
	Status TaskStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
}

// RunSummary acumula os desfechos de um lote.
type RunSummary struct {
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Add registra um desfecho no resumo.
func (s *RunSummary) Add(outcome TaskOutcome) {
	switch outcome.Status {
	case TaskSucceeded:
		s.Succeeded++
	case TaskSkipped:
		s.Skipped++
	case TaskFailed:
		s.Failed++
	}
}

// Total retorna o número de tarefas contabilizadas.
func (s *RunSummary) Total() int {
	return s.Succeeded + s.Skipped + s.Failed
}
