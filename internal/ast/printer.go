package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, stmt := range p.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s -> %s", a.Left.String(), a.Right.String())
}

func (e *ExprStmt) String() string {
	return e.Call.String()
}

func (s *IfStmt) String() string {
	return fmt.Sprintf("if %s\n%s", s.Test.String(), indentBody(s.Body))
}

func (s *WhileStmt) String() string {
	return fmt.Sprintf("while %s\n%s", s.Test.String(), indentBody(s.Body))
}

func (c *ConstDecl) String() string {
	return fmt.Sprintf("const %s -> %s", c.Left.String(), c.Right.String())
}

func (f *FuncDecl) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("def %s(", f.ID.String()))
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")\n")
	b.WriteString(indentBody(f.Body))
	return b.String()
}

func (e *BinaryExpr) String() string {
	s := fmt.Sprintf("%s %s %s", e.Left.String(), e.Op, e.Right.String())
	if e.Paren {
		return "(" + s + ")"
	}
	return s
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Arg.String()
}

func (m *MemberExpr) String() string {
	return fmt.Sprintf("%s[%s]", m.Target.String(), m.Property.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(c.Callee.String())
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (n *NumberLit) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func indentBody(body []Stmt) string {
	var b strings.Builder
	for i, stmt := range body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("    " + strings.ReplaceAll(stmt.String(), "\n", "\n    "))
	}
	return b.String()
}
