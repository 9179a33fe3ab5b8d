package adapter

import (
	"context"

	"github.com/MKhiriev/go-phone-notify/models"
)

const (
	actionSetIncomingCallScript = "SetIncomingCallScript"
	actionGetIncomingCallScript = "GetIncomingCallScript"
	actionScriptSave            = "ScriptSave"
	actionScriptLoad            = "ScriptLoad"
	actionScriptList            = "ScriptList"
	actionScriptDelete          = "ScriptDelete"
)

func (a *soapAdapter) SetIncomingCallScript(ctx context.Context, req models.SetIncomingCallScript) (bool, error) {
	return call[bool](ctx, a, actionSetIncomingCallScript, req)
}

func (a *soapAdapter) GetIncomingCallScript(ctx context.Context, req models.GetIncomingCallScript) (string, error) {
	return call[string](ctx, a, actionGetIncomingCallScript, req)
}

func (a *soapAdapter) ScriptSave(ctx context.Context, req models.ScriptSave) (bool, error) {
	return call[bool](ctx, a, actionScriptSave, req)
}

func (a *soapAdapter) ScriptLoad(ctx context.Context, req models.ScriptLoad) (string, error) {
	return call[string](ctx, a, actionScriptLoad, req)
}

func (a *soapAdapter) ScriptList(ctx context.Context, req models.ScriptList) ([]string, error) {
	return callArray[string](ctx, a, actionScriptList, req)
}

func (a *soapAdapter) ScriptDelete(ctx context.Context, req models.ScriptDelete) (bool, error) {
	return call[bool](ctx, a, actionScriptDelete, req)
}
