package ast

import "encoding/json"

// The JSON dumps mirror the shape the test fixtures record: every node is
// an object with a "type" discriminator followed by its fields, and bodies
// and lists marshal as arrays even when empty.

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Body []Stmt `json:"body"`
	}{"Program", nonNilStmts(p.Body)})
}

func (a *AssignStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Left  Expr   `json:"left"`
		Right Expr   `json:"right"`
	}{"Assignment", a.Left, a.Right})
}

func (e *ExprStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string    `json:"type"`
		Expression *CallExpr `json:"expression"`
	}{"ExpressionStatement", e.Call})
}

func (s *IfStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Test Expr   `json:"test"`
		Body []Stmt `json:"body"`
	}{"If", s.Test, nonNilStmts(s.Body)})
}

func (s *WhileStmt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Test Expr   `json:"test"`
		Body []Stmt `json:"body"`
	}{"While", s.Test, nonNilStmts(s.Body)})
}

func (c *ConstDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string     `json:"type"`
		Left  *IdentExpr `json:"left"`
		Right Expr       `json:"right"`
	}{"Constant", c.Left, c.Right})
}

func (f *FuncDecl) MarshalJSON() ([]byte, error) {
	params := f.Params
	if params == nil {
		params = []*IdentExpr{}
	}
	return json.Marshal(struct {
		Type   string       `json:"type"`
		ID     *IdentExpr   `json:"id"`
		Params []*IdentExpr `json:"params"`
		Body   []Stmt       `json:"body"`
	}{"FunctionDeclaration", f.ID, params, nonNilStmts(f.Body)})
}

func (e *BinaryExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Operator string `json:"operator"`
		Left     Expr   `json:"left"`
		Right    Expr   `json:"right"`
	}{"Binary", e.Op, e.Left, e.Right})
}

func (u *UnaryExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Operator string `json:"operator"`
		Argument Expr   `json:"argument"`
	}{"Unary", u.Op, u.Arg})
}

func (m *MemberExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string     `json:"type"`
		Target   *IdentExpr `json:"target"`
		Property Expr       `json:"property"`
	}{"Member", m.Target, m.Property})
}

func (c *CallExpr) MarshalJSON() ([]byte, error) {
	args := c.Args
	if args == nil {
		args = []Expr{}
	}
	return json.Marshal(struct {
		Type      string     `json:"type"`
		Callee    *IdentExpr `json:"callee"`
		Arguments []Expr     `json:"arguments"`
	}{"Call", c.Callee, args})
}

func (i *IdentExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"Identifier", i.Name})
}

func (n *NumberLit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value int32  `json:"value"`
	}{"NumericLiteral", n.Value})
}

func nonNilStmts(body []Stmt) []Stmt {
	if body == nil {
		return []Stmt{}
	}
	return body
}
