package model

import (
	"encoding/json"

	"github.com/scimkit/scimmodel/resource"
)

// CoreUnion builds a resource.Union dispatching on the two core resource
// schemas, with the enterprise extension registered on every decoded User.
// DecodeListResponse(raw, CoreUnion()) decodes a mixed User/Group search
// result in one call.
func CoreUnion() *resource.Union {
	u := resource.NewUnion()
	u.Register(UserSchema, func(raw []byte) (interface{}, error) {
		r := resource.New(User{})
		r.RegisterExtension(&EnterpriseUser{})
		if err := json.Unmarshal(raw, r); err != nil {
			return nil, err
		}
		return r, nil
	})
	u.Register(GroupSchema, func(raw []byte) (interface{}, error) {
		r := resource.New(Group{})
		if err := json.Unmarshal(raw, r); err != nil {
			return nil, err
		}
		return r, nil
	})
	return u
}
