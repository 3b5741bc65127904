package diagram

// ValidateStereotypes checks that no stereotype value is used twice across
// the given components.
//
// Components are scanned in order and, within each component, stereotypes in
// declaration order. The first repeated value aborts the scan with an error
// wrapping ErrDuplicateStereotype that names the value.
func ValidateStereotypes(components []*Component) error {
	visited := make(map[Stereotype]struct{})
	for _, c := range components {
		for _, s := range c.stereotypes {
			if _, seen := visited[s]; seen {
				return NewDuplicateStereotypeError(s).
					WithContext(map[string]any{"component": string(c.id)})
			}
			visited[s] = struct{}{}
		}
	}
	return nil
}
