package ipc

import (
	"encoding/json"
	"testing"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"RUN_COMMAND","payload":{"name":"top-left"}}` + "\n"))
	if err != nil {
		t.Fatalf("ParseRequest() returned error: %v", err)
	}
	if req.Command != CommandRunCommand {
		t.Errorf("Command = %q, want RUN_COMMAND", req.Command)
	}

	var payload RunCommandPayload
	if err := json.Unmarshal(req.Payload, &payload); err != nil {
		t.Fatalf("payload unmarshal failed: %v", err)
	}
	if payload.Name != "top-left" {
		t.Errorf("payload name = %q, want top-left", payload.Name)
	}
}

func TestParseRequestMalformed(t *testing.T) {
	if _, err := ParseRequest([]byte("not json\n")); err == nil {
		t.Error("malformed request should fail to parse")
	}
}

func TestResponseMarshalOK(t *testing.T) {
	resp, err := NewOKResponse(CommandsData{Commands: []string{"center", "maximize"}})
	if err != nil {
		t.Fatalf("NewOKResponse() returned error: %v", err)
	}

	raw, err := resp.Marshal()
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}

	var back Response
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Status != "OK" {
		t.Errorf("Status = %q, want OK", back.Status)
	}

	var data CommandsData
	if err := json.Unmarshal(back.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Commands) != 2 || data.Commands[0] != "center" {
		t.Errorf("Commands = %v, want [center maximize]", data.Commands)
	}
}

func TestResponseMarshalError(t *testing.T) {
	resp := NewErrorResponse("no active window")

	raw, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var back Response
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Status != "ERROR" || back.Error != "no active window" {
		t.Errorf("error response = %+v", back)
	}
}
