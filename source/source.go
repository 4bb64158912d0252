package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"github.com/structlens/structlens/errors"
	"github.com/structlens/structlens/layout"
	"github.com/structlens/structlens/typeexpr"
)

// Position locates a field declaration in its file. The layout engine
// treats it as an opaque locator and carries it through untouched.
type Position struct {
	File string
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// File parses one Go source file and extracts its struct declarations.
func File(path string) ([]layout.StructDefinition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IOFailure(errors.PhaseScan, path, err)
	}
	return Parse(path, src)
}

// Dir walks root and extracts struct declarations from every .go file,
// skipping hidden and underscore-prefixed directories and _test files.
// Declarations come back in walk order, files before their subdirectories.
func Dir(root string) ([]layout.StructDefinition, error) {
	var defs []layout.StructDefinition

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.IOFailure(errors.PhaseScan, path, err)
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		fileDefs, err := File(path)
		if err != nil {
			return err
		}
		defs = append(defs, fileDefs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// Parse extracts struct declarations from src. filename is used only for
// positions and error messages.
func Parse(filename string, src []byte) ([]layout.StructDefinition, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Syntax(errors.PhaseParse, filename, err)
	}

	var defs []layout.StructDefinition
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			defs = append(defs, layout.StructDefinition{
				Name:   ts.Name.Name,
				Fields: extractFields(fset, st),
			})
		}
	}
	return defs, nil
}

func extractFields(fset *token.FileSet, st *ast.StructType) []layout.FieldDescriptor {
	var fields []layout.FieldDescriptor
	if st.Fields == nil {
		return fields
	}

	for _, fld := range st.Fields.List {
		expr := typeexpr.Parse(types.ExprString(fld.Type))

		if len(fld.Names) == 0 {
			// Embedded field: the field name is the base type name.
			pos := fset.Position(fld.Type.Pos())
			fields = append(fields, layout.FieldDescriptor{
				Name: embeddedName(fld.Type),
				Type: expr,
				Loc:  Position{File: pos.Filename, Line: pos.Line, Col: pos.Column},
			})
			continue
		}

		// "a, b uint64" declares one descriptor per name, in order.
		for _, id := range fld.Names {
			pos := fset.Position(id.Pos())
			fields = append(fields, layout.FieldDescriptor{
				Name: id.Name,
				Type: expr,
				Loc:  Position{File: pos.Filename, Line: pos.Line, Col: pos.Column},
			})
		}
	}
	return fields
}

func embeddedName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return types.ExprString(e)
	}
}
