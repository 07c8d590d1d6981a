package message_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/DanielPopoola/egopay-gateway/internal/application/mocks"
	"github.com/DanielPopoola/egopay-gateway/internal/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sendRegister(t *testing.T, result application.RawResult) *message.RegisterResponse {
	t.Helper()

	dialer := mocks.NewMockDialer(t)
	channel := mocks.NewMockChannel(t)
	dialer.On("Dial", mock.Anything, mock.Anything).Return(channel, nil)
	channel.On("Call", mock.Anything, "register_online", mock.Anything).Return(result, nil)

	req, err := message.NewRegisterRequest(dialer, registerParameters())
	require.NoError(t, err)

	resp, err := req.Send(context.Background())
	require.NoError(t, err)
	return resp
}

func TestRegisterResponse_Fault(t *testing.T) {
	for _, fault := range []string{"Order already exists", "", "ошибка"} {
		resp := sendRegister(t, application.FaultResult(fault))

		assert.False(t, resp.IsSuccessful())
		assert.Equal(t, fault, resp.Data())
		assert.Equal(t, fault, resp.Fault())
		assert.Nil(t, resp.Fields())
		assert.Empty(t, resp.RedirectURL())
		assert.Empty(t, resp.TransactionReference())
	}
}

func TestRegisterResponse_Success(t *testing.T) {
	data := map[string]any{
		"redirect_url": "https://sandbox.egopay.ru/payments/request",
		"session":      "abc123",
	}
	resp := sendRegister(t, application.SuccessResult(data))

	assert.True(t, resp.IsSuccessful())
	assert.Equal(t, data, resp.Data())
	assert.Empty(t, resp.Fault())
	assert.Equal(t, "https://sandbox.egopay.ru/payments/request?session=abc123", resp.RedirectURL())
}

func TestResponse_MissingFields(t *testing.T) {
	resp := sendRegister(t, application.SuccessResult(map[string]any{"unexpected": "shape"}))

	assert.True(t, resp.IsSuccessful())
	assert.Empty(t, resp.Status())
	assert.Nil(t, resp.Order())
}
