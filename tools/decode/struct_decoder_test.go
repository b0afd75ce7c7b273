package decode

import "testing"

type chatLike struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

func TestDecodeMapBasic(t *testing.T) {
	p, err := DecodeMap[chatLike](map[string]any{
		"channel": "local",
		"message": "hello",
	})
	if err != nil {
		t.Fatalf("DecodeMap failed: %v", err)
	}
	if p.Channel != "local" || p.Message != "hello" {
		t.Errorf("got %+v", *p)
	}
}

func TestDecodeMapMissingFieldsZero(t *testing.T) {
	p, err := DecodeMap[chatLike](map[string]any{"message": "hi"})
	if err != nil {
		t.Fatalf("DecodeMap failed: %v", err)
	}
	if p.Channel != "" {
		t.Errorf("channel = %q, want empty", p.Channel)
	}
}

func TestDecodeMapWeakTyping(t *testing.T) {
	// 客户端有时把数字当消息发过来，宽松模式照收
	p, err := DecodeMap[chatLike](map[string]any{"message": 123})
	if err != nil {
		t.Fatalf("DecodeMap failed: %v", err)
	}
	if p.Message != "123" {
		t.Errorf("message = %q, want \"123\"", p.Message)
	}
}

func TestDecodeMapStrict(t *testing.T) {
	_, err := DecodeMap[chatLike](map[string]any{"message": 123}, Options{WeaklyTypedInput: false})
	if err == nil {
		t.Fatal("expected type error in strict mode")
	}
}
