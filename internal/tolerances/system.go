package tolerances

import "log/slog"

// Tolerances is the response shape for a full-category lookup: every
// designation row-set in the category's partition.
type Tolerances struct {
	Type           string           `json:"type"`
	Specifications map[string][]Row `json:"specifications"`
}

// Specification is the response shape for a single designation row-set.
// Grade is set when the lookup selected the Camco standard.
type Specification struct {
	Type          string `json:"type"`
	Designation   string `json:"designation"`
	Grade         Grade  `json:"grade,omitempty"`
	Specification []Row  `json:"specification"`
}

// System defines the public contract for tolerance reference data operations.
type System interface {
	Handler() *Handler

	All(c Category) (*Tolerances, error)
	Designation(c Category, designation string) (*Specification, error)
	CamcoStandard(c Category) (*Specification, error)
}

type system struct {
	provider Provider
	logger   *slog.Logger
}

// New creates a tolerance system over the given table provider.
func New(provider Provider, logger *slog.Logger) System {
	return &system{
		provider: provider,
		logger:   logger.With("system", "tolerances"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) All(c Category) (*Tolerances, error) {
	table, err := s.provider.Table()
	if err != nil {
		return nil, err
	}

	return &Tolerances{
		Type:           c.String(),
		Specifications: table.All(c),
	}, nil
}

func (s *system) Designation(c Category, designation string) (*Specification, error) {
	table, err := s.provider.Table()
	if err != nil {
		return nil, err
	}

	rows, err := table.Designation(c, designation)
	if err != nil {
		return nil, err
	}

	return &Specification{
		Type:          c.String(),
		Designation:   designation,
		Specification: rows,
	}, nil
}

func (s *system) CamcoStandard(c Category) (*Specification, error) {
	table, err := s.provider.Table()
	if err != nil {
		return nil, err
	}

	designation, rows, err := table.CamcoStandard(c)
	if err != nil {
		return nil, err
	}

	return &Specification{
		Type:          c.String(),
		Designation:   designation,
		Grade:         c.CamcoGrade(),
		Specification: rows,
	}, nil
}
