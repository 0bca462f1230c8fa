package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Заглушка аналитического бэкенда для локальной разработки: отдает
// фиксированный набор записей и агрегатов по тем же маршрутам.

var records = []map[string]any{
	{
		"id": "rec-1", "job_id": "J-1001", "invoice_number": "INV-1",
		"customer_name": "Alice", "company_name": "Acme",
		"collecting_driver": "Bob", "delivering_driver": "Bob",
		"status": "delivered", "cost": 12.5,
		"submitted_at": "2024-01-10T09:00:00Z", "delivered_at": "2024-01-10T10:05:00Z",
	},
	{
		"id": "rec-2", "job_id": "J-1002", "invoice_number": "INV-2",
		"customer_name": "Carol", "company_name": "Globex",
		"collecting_driver": "Dave", "delivering_driver": "Dave",
		"status": "canceled", "cost": 8.0,
		"submitted_at": "2024-01-11T12:00:00Z", "canceled_at": "2024-01-11T12:30:00Z",
	},
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func handleRecords(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 1000
	}

	page := []map[string]any{}
	if offset < len(records) {
		end := offset + limit
		if end > len(records) {
			end = len(records)
		}
		page = records[offset:end]
	}

	writeJSON(w, map[string]any{
		"total_registros": len(records),
		"fonte":           "database",
		"dados":           page,
	})
}

func handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"banco_conectado":       true,
		"total_registros_banco": len(records),
		"url_banco":             "stub://local",
		"ultimo_upload":         time.Now().UTC().Format(time.RFC3339),
	})
}

func handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"metrics": map[string]any{
			"total_deliveries":         map[string]any{"value": 2},
			"customer_experience":      map[string]any{"value": 65.0},
			"collection_time":          map[string]any{"value": 20.0},
			"average_delivery_time":    map[string]any{"value": 45.0},
			"total_courier_commission": map[string]any{"value": 4.1},
			"active_drivers":           map[string]any{"value": 2},
			"active_companies":         map[string]any{"value": 2},
			"total_distance":           map[string]any{"value": 18.4},
			"delivery_completion_status": map[string]any{
				"value": 50.0, "completed": 1, "total": 2,
			},
		},
		"top_5_drivers": []map[string]any{
			{"rank": 1, "name": "Bob", "deliveries": 1},
			{"rank": 2, "name": "Dave", "deliveries": 1},
		},
		"metadata": map[string]any{
			"total_records_analyzed": 2,
			"total_records_database": 2,
		},
	})
}

func handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"erro": "invalid multipart body"})
		return
	}
	_, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, map[string]any{"erro": "file field is required"})
		return
	}
	writeJSON(w, map[string]any{
		"sucesso":             true,
		"mensagem":            "processed",
		"arquivo":             header.Filename,
		"total_registros":     len(records),
		"salvo_no_banco":      true,
		"registros_inseridos": len(records),
		"duplicatas_evitadas": 0,
	})
}

func handleClear(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"sucesso":             true,
		"mensagem":            "database cleared",
		"registros_removidos": len(records),
	})
}

func main() {
	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"status": "ok"})
	}).Methods("GET")
	router.HandleFunc("/status-banco", handleStatus).Methods("GET")
	router.HandleFunc("/dados-banco", handleRecords).Methods("GET")
	router.HandleFunc("/dados-hibrido", handleRecords).Methods("GET")
	router.HandleFunc("/dashboard-metrics", handleMetrics).Methods("GET")
	router.HandleFunc("/empresas", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"total_empresas": 2,
			"total_pedidos":  2,
			"fonte":          "database",
			"empresas": []map[string]any{
				{"nome": "Acme", "total_pedidos": 1, "total_entregas": 1},
				{"nome": "Globex", "total_pedidos": 1, "total_entregas": 1},
			},
		})
	}).Methods("GET")
	router.HandleFunc("/entregadores", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"total_entregadores":            2,
			"total_entregas":                2,
			"media_entregas_por_entregador": 1.0,
			"fonte":                         "database",
			"entregadores": []map[string]any{
				{"nome": "Bob", "entregas_coleta": 1, "entregas_entrega": 1, "total_entregas": 1},
				{"nome": "Dave", "entregas_coleta": 1, "entregas_entrega": 1, "total_entregas": 1},
			},
		})
	}).Methods("GET")
	router.HandleFunc("/localizacoes-entrega", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"total_localizacoes": 2,
			"total_entregas":     2,
			"fonte":              "database",
			"localizacoes": []map[string]any{
				{"endereco": "1 Main St", "total_entregas": 1},
				{"endereco": "2 Side St", "total_entregas": 1},
			},
		})
	}).Methods("GET")
	router.HandleFunc("/analise-temporal", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"fonte": "database",
			"analise_temporal": map[string]any{
				"total_pedidos_analisados":  2,
				"total_horarios_diferentes": 2,
				"total_intervalos_30min":    2,
				"pedidos_por_datetime": []map[string]any{
					{"data_hora": "2024-01-10T09:00:00Z", "quantidade_pedidos": 1},
					{"data_hora": "2024-01-11T12:00:00Z", "quantidade_pedidos": 1},
				},
			},
		})
	}).Methods("GET")
	router.HandleFunc("/empresa-metricas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"empresa":          r.URL.Query().Get("empresa"),
			"total_deliveries": 1,
			"collection_time":  map[string]any{"media_minutos": 20.0, "amostras_validas": 1},
			"delivery_time":    map[string]any{"media_minutos": 45.0, "amostras_validas": 1},
		})
	}).Methods("GET")
	router.HandleFunc("/upload", handleUpload).Methods("POST")
	router.HandleFunc("/limpar-banco", handleClear).Methods("DELETE")

	log.Println("analytics stub listening on :8000")
	if err := http.ListenAndServe(":8000", router); err != nil {
		log.Fatal(err)
	}
}
