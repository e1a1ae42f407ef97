package server

import "testing"

func TestDecodeRequestVariants(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"type":"Join"}`))
	if err != nil {
		t.Fatalf("DecodeRequest(Join) failed: %v", err)
	}
	if _, ok := req.(JoinRequest); !ok {
		t.Errorf("Expected JoinRequest, got %T", req)
	}

	req, err = DecodeRequest([]byte(`{"type":"Remove","x":3,"y":7}`))
	if err != nil {
		t.Fatalf("DecodeRequest(Remove) failed: %v", err)
	}
	rm, ok := req.(RemoveRequest)
	if !ok {
		t.Fatalf("Expected RemoveRequest, got %T", req)
	}
	if rm.X != 3 || rm.Y != 7 {
		t.Errorf("Expected (3, 7), got (%d, %d)", rm.X, rm.Y)
	}
}

func TestDecodeRequestRejectsUnknownType(t *testing.T) {
	if _, err := DecodeRequest([]byte(`{"type":"Teleport"}`)); err == nil {
		t.Error("Expected error for unknown request type")
	}
	if _, err := DecodeRequest([]byte(`not json`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestEncodeResponseWireFormat(t *testing.T) {
	data, err := EncodeResponse(RemoveResponse{X: 2, Y: 5})
	if err != nil {
		t.Fatalf("EncodeResponse(Remove) failed: %v", err)
	}
	want := `{"type":"Remove","x":2,"y":5}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}

	data, err = EncodeResponse(FeedResponse{Row: []bool{true, false, true}})
	if err != nil {
		t.Fatalf("EncodeResponse(Feed) failed: %v", err)
	}
	want = `{"type":"Feed","row":[true,false,true]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}

	data, err = EncodeResponse(ReadyResponse{})
	if err != nil {
		t.Fatalf("EncodeResponse(Ready) failed: %v", err)
	}
	want = `{"type":"Ready"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	data, err := EncodeRequest(RemoveRequest{X: 4, Y: 8})
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	req, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	rm, ok := req.(RemoveRequest)
	if !ok {
		t.Fatalf("Expected RemoveRequest, got %T", req)
	}
	if rm.X != 4 || rm.Y != 8 {
		t.Errorf("Round trip changed coordinates: (%d, %d)", rm.X, rm.Y)
	}
}
