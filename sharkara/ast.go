package sharkara

type Node interface {
	Pos() Position
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file.
type Program struct {
	// Marked reports whether the source carried a "$/" program marker.
	Marked     bool
	Statements []Statement
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

// Expr wraps a single token: a literal, identifier, operator or call form.
type Expr struct {
	Token Token
}

func (e *Expr) exprNode()     {}
func (e *Expr) Pos() Position { return e.Token.Pos }

// ListLiteral is a "lst[]" marker with optional parenthesised elements.
type ListLiteral struct {
	Elements []Expression
	position Position
}

func (e *ListLiteral) exprNode()     {}
func (e *ListLiteral) Pos() Position { return e.position }

// BinaryExpr is only produced when Config.BinaryExpressions is set.
type BinaryExpr struct {
	Operator Token
	Left     Expression
	Right    Expression
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.Left.Pos() }

// ExprStmt is a special call form ("chad.math", "chad.0") used as a statement.
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.Expr.Pos() }

type AssignStmt struct {
	Variable Token
	Value    Expression
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.Variable.Pos }

// VarDecl declares a variable. Type is nil when no annotation was written.
type VarDecl struct {
	Name     Token
	Type     *Token
	Value    Expression
	position Position
}

func (s *VarDecl) stmtNode()     {}
func (s *VarDecl) Pos() Position { return s.position }

type IfStmt struct {
	Condition Expression
	Body      Statement
	position  Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }

type WhileStmt struct {
	Condition Expression
	Body      Statement
	position  Position
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Pos() Position { return s.position }

// ForStmt owns its loop-control expressions and the statements before the
// EndFor terminator. Terminator keeps the spelling that closed the loop.
type ForStmt struct {
	Control    []Expression
	Body       []Statement
	Terminator Token
	position   Position
}

func (s *ForStmt) stmtNode()     {}
func (s *ForStmt) Pos() Position { return s.position }

type FuncDecl struct {
	Name     Token
	Body     []Statement
	position Position
}

func (s *FuncDecl) stmtNode()     {}
func (s *FuncDecl) Pos() Position { return s.position }

type ClassDecl struct {
	Name     Token
	Body     []Statement
	position Position
}

func (s *ClassDecl) stmtNode()     {}
func (s *ClassDecl) Pos() Position { return s.position }
