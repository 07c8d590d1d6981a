package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderWsdlPath = "../../../resources/wsdl/orderv2.wsdl"
const statusWsdlPath = "../../../resources/wsdl/statusv4.wsdl"

func TestLoadServiceDescription(t *testing.T) {
	t.Run("order service", func(t *testing.T) {
		desc, err := loadServiceDescription(orderWsdlPath)
		require.NoError(t, err)

		assert.Equal(t, "urn:egopay:order:v2", desc.namespace)
		for _, name := range []string{
			"register_online", "register_offline", "register_simple",
			"cancel", "reject", "refund", "confirm",
		} {
			op, ok := desc.operations[name]
			require.True(t, ok, name)
			assert.Equal(t, []string{"request"}, op.parts)
			assert.Equal(t, "urn:egopay:order:v2#"+name, op.action)
		}
	})

	t.Run("status service", func(t *testing.T) {
		desc, err := loadServiceDescription(statusWsdlPath)
		require.NoError(t, err)

		assert.Equal(t, "urn:egopay:status:v4", desc.namespace)
		assert.Contains(t, desc.operations, "get_by_order")
		assert.NotContains(t, desc.operations, "cancel")
	})
}

func TestParseServiceDescription_Invalid(t *testing.T) {
	tests := map[string]string{
		"not xml":      "definitely not xml",
		"no namespace": `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"><portType><operation name="x"/></portType></definitions>`,
		"no operations": `<definitions targetNamespace="urn:x" xmlns="http://schemas.xmlsoap.org/wsdl/"/>`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseServiceDescription([]byte(raw))
			assert.Error(t, err)
		})
	}
}
