package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &ShakeRequestPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events
// Safe to call more than once
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventPlayRequest", EventPlayRequest, nil)
		RegisterType("EventTutorialRequest", EventTutorialRequest, nil)
		RegisterType("EventMenuRequest", EventMenuRequest, nil)
		RegisterType("EventGameOver", EventGameOver, nil)

		RegisterType("EventGameStart", EventGameStart, nil)
		RegisterType("EventGameExit", EventGameExit, nil)
		RegisterType("EventEndScreenEnter", EventEndScreenEnter, nil)
		RegisterType("EventEndScreenExit", EventEndScreenExit, nil)
		RegisterType("EventFrontendEnter", EventFrontendEnter, nil)
		RegisterType("EventFrontendExit", EventFrontendExit, nil)

		RegisterType("EventCollisionStart", EventCollisionStart, &CollisionPayload{})
		RegisterType("EventShakeRequest", EventShakeRequest, &ShakeRequestPayload{})

		RegisterType("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
		RegisterType("EventMusicRequest", EventMusicRequest, &MusicRequestPayload{})
	})
}
