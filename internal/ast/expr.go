package ast

type Expr interface {
	Node
	isExpr()
}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*MemberExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*NumberLit) isExpr() {}
