// Package enums contains enums
package enums

// BloodGroups contains all the valid blood groups
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Genders contains all the valid genders
var Genders = []string{"male", "female", "other"}

// IsBloodGroup reports wether the given value is a valid blood group
func IsBloodGroup(v string) bool {
	for _, bg := range BloodGroups {
		if bg == v {
			return true
		}
	}
	return false
}

// IsGender reports wether the given value is a valid gender
func IsGender(v string) bool {
	for _, g := range Genders {
		if g == v {
			return true
		}
	}
	return false
}
