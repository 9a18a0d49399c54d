package lir

import (
	"fmt"
	"strings"
)

// printer assigns stable textual names to the values and blocks of one
// function while rendering it.
type printer struct {
	valueNames map[Value]string
	blockNames map[*BasicBlock]string
	nextValue  int
}

// Repr returns the textual rendering of the function: its signature followed
// by each block with its parameter list and instructions.
func (f *Function) Repr() string {
	p := &printer{
		valueNames: make(map[Value]string),
		blockNames: make(map[*BasicBlock]string),
	}

	// Name blocks and their parameters up front so forward branches print
	// resolved labels.
	for i, b := range f.Blocks {
		p.blockNames[b] = fmt.Sprintf("bb%d", i)

		for _, param := range b.Params {
			p.valueNames[param] = fmt.Sprintf("%%%d", p.nextValue)
			p.nextValue++
		}
	}

	sb := strings.Builder{}
	sb.WriteString("func @")
	sb.WriteString(f.Name)
	sb.WriteString(" : ")
	sb.WriteString(f.Sig.Repr())

	if f.Rep != RepNative {
		sb.WriteString(" [")
		sb.WriteString(f.Rep.Repr())
		sb.WriteRune(']')
	}

	sb.WriteString(" {\n")

	for _, b := range f.Blocks {
		sb.WriteString(p.blockHeader(b))
		sb.WriteString(":\n")

		for _, inst := range b.Instrs {
			sb.WriteString("  ")
			sb.WriteString(p.instruction(inst))
			sb.WriteRune('\n')
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Repr returns the textual rendering of every function in the module.
func (m *Module) Repr() string {
	sb := strings.Builder{}

	for i, f := range m.Functions {
		sb.WriteString(f.Repr())

		if i < len(m.Functions)-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

/* -------------------------------------------------------------------------- */

func (p *printer) blockHeader(b *BasicBlock) string {
	sb := strings.Builder{}
	sb.WriteString(p.blockNames[b])

	if len(b.Params) > 0 {
		sb.WriteRune('(')

		for i, param := range b.Params {
			fmt.Fprintf(&sb, "%s : @%s %s", p.valueNames[param], param.Ownership.Repr(), param.Type().Repr())

			if i < len(b.Params)-1 {
				sb.WriteString(", ")
			}
		}

		sb.WriteRune(')')
	}

	return sb.String()
}

func (p *printer) instruction(inst *Instruction) string {
	sb := strings.Builder{}

	if inst.ResultType != nil {
		sb.WriteString(p.name(inst))
		sb.WriteString(" = ")
	}

	sb.WriteString(inst.Op.Repr())

	switch inst.Op {
	case OpIntegerLiteral:
		fmt.Fprintf(&sb, " %s, %d", inst.ResultType.Repr(), inst.IntValue)
	case OpFloatLiteral:
		fmt.Fprintf(&sb, " %s, %g", inst.ResultType.Repr(), inst.FloatValue)
	case OpStringLiteral, OpConstStringLiteral:
		fmt.Fprintf(&sb, " %q", inst.StrValue)
	case OpFunctionRef:
		fmt.Fprintf(&sb, " @%s", inst.Callee.Name)
	case OpAllocGlobal, OpGlobalAddr, OpGlobalValue:
		fmt.Fprintf(&sb, " @%s", inst.GlobalName)
	case OpBeginAccess, OpBeginUnpairedAccess, OpEndUnpairedAccess:
		fmt.Fprintf(&sb, " [%s]", inst.Enforcement.Repr())
		p.operands(&sb, inst)
	case OpBuiltin:
		fmt.Fprintf(&sb, " %q", inst.Builtin.Repr())
		p.operands(&sb, inst)
	case OpDebugValue, OpDebugValueAddr:
		p.operands(&sb, inst)
		fmt.Fprintf(&sb, ", name %q", inst.StrValue)
	case OpMetatype:
		fmt.Fprintf(&sb, " %s", inst.ResultType.Repr())
	default:
		p.operands(&sb, inst)
	}

	for i, target := range inst.Targets {
		if i == 0 && len(inst.Operands) == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(p.blockNames[target.Block])

		if len(target.Args) > 0 {
			sb.WriteRune('(')

			for j, arg := range target.Args {
				sb.WriteString(p.name(arg))

				if j < len(target.Args)-1 {
					sb.WriteString(", ")
				}
			}

			sb.WriteRune(')')
		}
	}

	return sb.String()
}

func (p *printer) operands(sb *strings.Builder, inst *Instruction) {
	for i, operand := range inst.Operands {
		if i == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(p.name(operand))
	}
}

// name returns the printed name of a value, assigning a fresh one to any
// instruction result not yet named.  Undef prints as `undef`.
func (p *printer) name(v Value) string {
	if _, ok := v.(*Undef); ok {
		return "undef"
	}

	if name, ok := p.valueNames[v]; ok {
		return name
	}

	name := fmt.Sprintf("%%%d", p.nextValue)
	p.nextValue++
	p.valueNames[v] = name
	return name
}
