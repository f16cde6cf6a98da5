// Package conformance drives end-to-end scenarios against a fresh
// interpreter wired to an in-memory host, driven from YAML fixtures rather
// than hand-written Go test bodies. There is no external lexer/parser
// available to this module, so a fixture's `script` is a structural
// statement list the loader turns directly into an AST, instead of raw
// script source text.
package conformance

// Suite is one YAML fixture file: a named group of related cases.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// Case is a single scenario: an initial player state, a script, a tick
// budget, and the expected observable outcome.
type Case struct {
	Name string     `yaml:"name"`
	// Ticks bounds how many times Step is called; defaults to 1 if unset.
	Ticks int `yaml:"ticks"`
	// TickMs is how far the fake clock advances before each Step call,
	// simulating the host's per-frame elapsed time so that a script with
	// several cooldown-gated commands in sequence actually clears
	// each cooldown instead of retrying the same statement forever.
	// Defaults to 260ms (just over the 250ms default command wait) when
	// unset; a case exercising "cooldown not yet elapsed" sets this
	// explicitly to something smaller.
	TickMs int         `yaml:"tick_ms,omitempty"`
	Player PlayerSpec  `yaml:"player,omitempty"`
	Script []Stmt      `yaml:"script"`
	Expect Expectation `yaml:"expect"`
}

// PlayerSpec seeds the fake Player's stats/flags for a case.
type PlayerSpec struct {
	Hits    int  `yaml:"hits,omitempty"`
	MaxHits int  `yaml:"max_hits,omitempty"`
	Dead    bool `yaml:"dead,omitempty"`
	Holding bool `yaml:"holding,omitempty"`
}

// Cond is a single binary comparison used by `if`/`while` statements. Only
// one comparison is supported — no AND/OR nesting — since that covers every
// scenario this fixture format needs; a fixture needing logical composition
// is a reason to extend this, not a gap to work around with Go test code.
type Cond struct {
	Lhs string `yaml:"lhs"`
	Op  string `yaml:"op"`
	Rhs string `yaml:"rhs"`
}

// Stmt is one statement node, command or control construct. Exactly one of
// Command, For, Foreach, If, While, Stop, Break, Continue should be set;
// Body holds the nested statements for a control construct.
type Stmt struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	Quiet   bool     `yaml:"quiet,omitempty"`
	Force   bool     `yaml:"force,omitempty"`

	Stop     bool `yaml:"stop,omitempty"`
	Break    bool `yaml:"break,omitempty"`
	Continue bool `yaml:"continue,omitempty"`

	For     *int         `yaml:"for,omitempty"`
	Foreach *ForeachSpec `yaml:"foreach,omitempty"`
	If      *Cond        `yaml:"if,omitempty"`
	While   *Cond        `yaml:"while,omitempty"`
	Body    []Stmt       `yaml:"body,omitempty"`
}

// ForeachSpec names the loop variable and the list it walks.
type ForeachSpec struct {
	Var  string `yaml:"var"`
	List string `yaml:"list"`
}

// Expectation is what a case asserts about the run. Every field is
// optional; only the ones a scenario cares about need be set.
type Expectation struct {
	Sink        []string       `yaml:"sink,omitempty"`
	Terminated  *bool          `yaml:"terminated,omitempty"`
	ScopeDepth  *int           `yaml:"scope_depth,omitempty"`
	Aliases     map[string]string `yaml:"aliases,omitempty"`
	ListLengths map[string]int    `yaml:"list_lengths,omitempty"`
	ActionVerbs []string       `yaml:"action_verbs,omitempty"`
}
