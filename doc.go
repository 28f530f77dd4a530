// Package yamlnav provides read-only navigation over parsed YAML documents.
//
// A [Node] is a small value referring to one node of a parsed document.
// Lookups which do not resolve, such as a missing key or an index out of
// range, return the Null node rather than an error, so lookups may be
// chained:
//
//	root, err := yamlnav.LoadString(src)
//	if err != nil {
//		return err
//	}
//	if name := root.Key("spec").Key("containers").Index(0).Key("name"); name.Bool() {
//		fmt.Println(name.Text())
//	}
//
// Documents are immutable once loaded, so Nodes may be read from any number
// of goroutines.
package yamlnav
