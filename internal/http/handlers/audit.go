package handlers

import (
	"encoding/json"
	"log"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// audit writes one structured audit line. Events are JSON so log
// shippers can index them without parsing free text.
func audit(event *domain.AuditEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("AUDIT_MARSHAL_FAILED: event_type=%s error=%v", event.EventType, err)
		return
	}
	log.Printf("AUDIT %s", data)
}
