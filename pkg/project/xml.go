package project

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/adminext/pkg/container"
	"github.com/arthur-debert/adminext/pkg/errors"
	"github.com/arthur-debert/adminext/pkg/typeinfo"
	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/beevik/etree"
)

func loadXML(path string) (*Project, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path).
			WithDetail("path", path)
	}

	root := doc.SelectElement("container")
	if root == nil {
		return nil, errors.Newf(errors.ErrConfigParse, "%s has no <container> root element", path).
			WithDetail("path", path)
	}

	b := container.NewBuilder()
	p := &Project{Container: b}

	if params := root.SelectElement("parameters"); params != nil {
		for _, el := range params.SelectElements("parameter") {
			key := el.SelectAttrValue("key", "")
			if key == "" {
				return nil, errors.New(errors.ErrConfigParse, "top-level parameter without a key")
			}
			if err := b.SetParameter(key, xmlValue(el, "parameter")); err != nil {
				return nil, err
			}
		}
	}

	if decls := root.SelectElement("types"); decls != nil {
		for _, el := range decls.SelectElements("type") {
			p.Types = append(p.Types, xmlDeclaration(el))
		}
	}

	if services := root.SelectElement("services"); services != nil {
		var aliases [][2]string
		for _, el := range services.SelectElements("service") {
			id := el.SelectAttrValue("id", "")
			if alias := el.SelectAttrValue("alias", ""); alias != "" {
				aliases = append(aliases, [2]string{id, alias})
				continue
			}

			def := container.NewDefinition(id, el.SelectAttrValue("class", ""))
			for _, arg := range el.SelectElements("argument") {
				def.Arguments = append(def.Arguments, xmlValue(arg, "argument"))
			}
			for _, tag := range el.SelectElements("tag") {
				name, attrs := xmlTag(tag)
				if name == "" {
					return nil, errors.Newf(errors.ErrConfigParse, "tag without a name on service %s", id).
						WithDetail("service", id)
				}
				def.AddTag(name, attrs)
			}
			if err := b.Register(def); err != nil {
				return nil, err
			}
		}
		for _, a := range aliases {
			if err := b.SetAlias(a[0], a[1]); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// xmlValue reads a <parameter> or <argument> element. Collections become a
// list when no child has a key, a map otherwise.
func xmlValue(el *etree.Element, child string) any {
	switch el.SelectAttrValue("type", "") {
	case "collection":
		items := el.SelectElements(child)
		keyed := false
		for _, item := range items {
			if item.SelectAttr("key") != nil {
				keyed = true
				break
			}
		}
		if keyed {
			out := make(map[string]any, len(items))
			for _, item := range items {
				out[item.SelectAttrValue("key", "")] = xmlValue(item, child)
			}
			return out
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, xmlValue(item, child))
		}
		return out
	case "service":
		return types.Reference{ID: el.SelectAttrValue("id", "")}
	case "string":
		return el.Text()
	}

	text := strings.TrimSpace(el.Text())
	if text == "" && len(el.ChildElements()) == 0 {
		return nil
	}
	return phpize(text)
}

func xmlTag(el *etree.Element) (string, *types.Attributes) {
	attrs := types.NewAttributes()
	name := ""
	for _, a := range el.Attr {
		if a.Space != "" {
			continue
		}
		if a.Key == "name" {
			name = a.Value
			continue
		}
		attrs.Set(a.Key, phpize(a.Value))
	}
	for _, child := range el.SelectElements("attribute") {
		key := child.SelectAttrValue("name", "")
		if key == "" {
			continue
		}
		if key == "name" && name == "" {
			name = strings.TrimSpace(child.Text())
			continue
		}
		attrs.Set(key, phpize(strings.TrimSpace(child.Text())))
	}
	return name, attrs
}

func xmlDeclaration(el *etree.Element) typeinfo.Declaration {
	d := typeinfo.Declaration{
		Name:   el.SelectAttrValue("name", ""),
		Kind:   types.TypeKind(el.SelectAttrValue("kind", "")),
		Parent: el.SelectAttrValue("parent", ""),
	}
	for _, i := range el.SelectElements("implements") {
		d.Implements = append(d.Implements, strings.TrimSpace(i.Text()))
	}
	for _, u := range el.SelectElements("uses") {
		d.Uses = append(d.Uses, strings.TrimSpace(u.Text()))
	}
	return d
}

// phpize converts literal XML text to a scalar: booleans, null and integers
// are recognized, everything else stays a string
func phpize(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return n
	}
	return s
}
