package analytics

// Wire-модели бэкенда аналитики. Имена полей исторические (API на португальском),
// наружу уходят только entities через converters.go.

type errorBody struct {
	Erro     string `json:"erro"`
	Detalhes string `json:"detalhes"`
}

type recordPage struct {
	TotalRegistros int          `json:"total_registros"`
	Fonte          string       `json:"fonte"`
	Dados          []wireRecord `json:"dados"`
	Data           []wireRecord `json:"data"`
}

type wireRecord struct {
	ID                string   `json:"id"`
	JobID             string   `json:"job_id"`
	InvoiceID         string   `json:"invoice_id"`
	InvoiceNumber     string   `json:"invoice_number"`
	Priority          string   `json:"priority"`
	CustomerName      string   `json:"customer_name"`
	CompanyName       string   `json:"company_name"`
	CollectingDriver  string   `json:"collecting_driver"`
	DeliveringDriver  string   `json:"delivering_driver"`
	PickupAddress     string   `json:"pickup_address"`
	DeliveryAddress   string   `json:"delivery_address"`
	ServiceType       string   `json:"service_type"`
	Cost              float64  `json:"cost"`
	TipAmount         *float64 `json:"tip_amount"`
	CourierCommission *float64 `json:"courier_commission"`
	CommissionVAT     *float64 `json:"courier_commission_vat"`
	Status            string   `json:"status"`
	SubmittedAt       string   `json:"submitted_at"`
	AcceptedAt        string   `json:"accepted_at"`
	CollectedAt       string   `json:"collected_at"`
	DeliveredAt       string   `json:"delivered_at"`
	CanceledAt        string   `json:"canceled_at"`
	DriverNotes       string   `json:"driver_notes"`
	ReturnJob         bool     `json:"return_job"`
	PaymentMethod     string   `json:"payment_method"`
	FuelSurcharge     *float64 `json:"fuel_surcharge"`
	UploadedAt        string   `json:"uploaded_at"`
	UploadedBy        string   `json:"uploaded_by"`
	CollectionMinutes *float64 `json:"collection_time_minutes"`
	DeliveryMinutes   *float64 `json:"delivery_time_minutes"`
	ExperienceMinutes *float64 `json:"customer_experience_minutes"`
}

// Текущий формат метрик (/dashboard-metrics, /metricas-resumo-banco).
type wireDashboardMetrics struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Metrics   struct {
		TotalDeliveries        wireMetricValue `json:"total_deliveries"`
		CustomerExperience     wireMetricValue `json:"customer_experience"`
		CollectionTime         wireMetricValue `json:"collection_time"`
		AverageDeliveryTime    wireMetricValue `json:"average_delivery_time"`
		TotalCourierCommission wireMetricValue `json:"total_courier_commission"`
		ActiveDrivers          wireMetricValue `json:"active_drivers"`
		ActiveCompanies        wireMetricValue `json:"active_companies"`
		TotalDistance          wireMetricValue `json:"total_distance"`
		DeliveryCompletion     struct {
			Value     float64 `json:"value"`
			Completed int     `json:"completed"`
			Total     int     `json:"total"`
		} `json:"delivery_completion_status"`
	} `json:"metrics"`
	TopDrivers []struct {
		Rank       int    `json:"rank"`
		Name       string `json:"name"`
		Deliveries int    `json:"deliveries"`
	} `json:"top_5_drivers"`
	Metadata struct {
		TotalRecordsAnalyzed int `json:"total_records_analyzed"`
		TotalRecordsDatabase int `json:"total_records_database"`
	} `json:"metadata"`
}

type wireMetricValue struct {
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Samples int     `json:"samples"`
}

// Легаси-формат метрик, приводится к каноническому в converters.go.
type wireLegacyMetrics struct {
	Medias struct {
		CollectionTime     *float64 `json:"Collection Time (minutos)"`
		DeliveryTime       *float64 `json:"Delivery Time (minutos)"`
		CustomerExperience *float64 `json:"Customer Experience (minutos)"`
	} `json:"medias"`
	MetricasPrincipais struct {
		TotalCourierCommission float64 `json:"Total Courier Commission"`
		ActiveDrivers          int     `json:"Active Drivers"`
		TotalDeliveries        int     `json:"Total Deliveries"`
		TotalDistance          float64 `json:"Total Distance"`
	} `json:"metricas_principais"`
	EstatisticasDetalhadas struct {
		CollectionTime     wireLegacyStat `json:"Collection Time"`
		DeliveryTime       wireLegacyStat `json:"Delivery Time"`
		CustomerExperience wireLegacyStat `json:"Customer Experience"`
	} `json:"estatisticas_detalhadas"`
	AnaliseStatus struct {
		TaxaSucesso struct {
			Percentual float64 `json:"percentual"`
		} `json:"taxa_sucesso"`
		ResumoQuantitativo struct {
			TotalEntregas      int `json:"total_entregas"`
			EntregasConcluidas int `json:"entregas_concluidas"`
		} `json:"resumo_quantitativo"`
	} `json:"analise_status"`
}

type wireLegacyStat struct {
	Media    *float64 `json:"media"`
	Minimo   *float64 `json:"minimo"`
	Maximo   *float64 `json:"maximo"`
	Amostras int      `json:"amostras"`
}

type wireStatus struct {
	BancoConectado        bool   `json:"banco_conectado"`
	TotalRegistrosBanco   int    `json:"total_registros_banco"`
	TotalRegistrosMemoria int    `json:"total_registros_memoria"`
	URLBanco              string `json:"url_banco"`
	UltimoUpload          string `json:"ultimo_upload"`
	Erro                  string `json:"erro"`
}

type wireCompanies struct {
	TotalEmpresas    int           `json:"total_empresas"`
	TotalPedidos     int           `json:"total_pedidos"`
	EmpresaMaisAtiva *wireCompany  `json:"empresa_mais_ativa"`
	Fonte            string        `json:"fonte"`
	Empresas         []wireCompany `json:"empresas"`
}

type wireCompany struct {
	Nome               string   `json:"nome"`
	TotalPedidos       int      `json:"total_pedidos"`
	LocalizacoesPickup []string `json:"localizacoes_pickup"`
	TotalLocalizacoes  int      `json:"total_localizacoes"`
	EnderecoMaisComum  string   `json:"endereco_mais_comum"`
	TotalEntregas      int      `json:"total_entregas"`
}

type wireDrivers struct {
	TotalEntregadores          int          `json:"total_entregadores"`
	TotalEntregas              int          `json:"total_entregas"`
	MediaEntregasPorEntregador float64      `json:"media_entregas_por_entregador"`
	EntregadorMaisAtivo        *wireDriver  `json:"entregador_mais_ativo"`
	Fonte                      string       `json:"fonte"`
	Entregadores               []wireDriver `json:"entregadores"`
}

type wireDriver struct {
	Nome            string `json:"nome"`
	EntregasColeta  int    `json:"entregas_coleta"`
	EntregasEntrega int    `json:"entregas_entrega"`
	TotalEntregas   int    `json:"total_entregas"`
}

type wireLocations struct {
	TotalLocalizacoes    int            `json:"total_localizacoes"`
	TotalEntregas        int            `json:"total_entregas"`
	LocalizacaoMaisComum *wireLocation  `json:"localizacao_mais_comum"`
	Fonte                string         `json:"fonte"`
	Localizacoes         []wireLocation `json:"localizacoes"`
}

type wireLocation struct {
	Endereco      string `json:"endereco"`
	TotalEntregas int    `json:"total_entregas"`
}

type wireTemporal struct {
	Fonte           string `json:"fonte"`
	AnaliseTemporal struct {
		TotalPedidosAnalisados  int            `json:"total_pedidos_analisados"`
		TotalHorariosDiferentes int            `json:"total_horarios_diferentes"`
		TotalIntervalos30Min    int            `json:"total_intervalos_30min"`
		HorarioMaisMovimentado  *wirePeak      `json:"horario_mais_movimentado"`
		PedidosPorDatetime      []wirePeak     `json:"pedidos_por_datetime"`
		Top10Intervalos30Min    []wireInterval `json:"top10_intervalos_30min"`
	} `json:"analise_temporal"`
}

type wirePeak struct {
	DataHora          string `json:"data_hora"`
	QuantidadePedidos int    `json:"quantidade_pedidos"`
}

type wireInterval struct {
	IntervaloCentro   string `json:"intervalo_centro"`
	IntervaloInicio   string `json:"intervalo_inicio"`
	IntervaloFim      string `json:"intervalo_fim"`
	QuantidadePedidos int    `json:"quantidade_pedidos"`
	Descricao         string `json:"descricao"`
	DiaSemana         string `json:"dia_semana"`
	PeriodoDoDia      string `json:"periodo_do_dia"`
}

type wireCompanyMetrics struct {
	Empresa            string        `json:"empresa"`
	TotalDeliveries    int           `json:"total_deliveries"`
	CollectionTime     wireRangeStat `json:"collection_time"`
	DeliveryTime       wireRangeStat `json:"delivery_time"`
	CustomerExperience wireRangeStat `json:"customer_experience"`
	DelayedOrders      struct {
		Total            int     `json:"total"`
		Percentual       float64 `json:"percentual"`
		Criterio         string  `json:"criterio"`
		TotalComMetricas int     `json:"total_com_metricas"`
	} `json:"delayed_orders"`
}

type wireRangeStat struct {
	MediaMinutos    *float64 `json:"media_minutos"`
	MinimoMinutos   *float64 `json:"minimo_minutos"`
	MaximoMinutos   *float64 `json:"maximo_minutos"`
	AmostrasValidas int      `json:"amostras_validas"`
}

type wireUploadResult struct {
	Sucesso            bool   `json:"sucesso"`
	Mensagem           string `json:"mensagem"`
	TotalRegistros     int    `json:"total_registros"`
	Arquivo            string `json:"arquivo"`
	SalvoNoBanco       bool   `json:"salvo_no_banco"`
	RegistrosInseridos int    `json:"registros_inseridos"`
	DuplicatasEvitadas int    `json:"duplicatas_evitadas"`
	Erro               string `json:"erro"`
	Detalhes           string `json:"detalhes"`
}

type wireClearResult struct {
	Sucesso            bool   `json:"sucesso"`
	Mensagem           string `json:"mensagem"`
	RegistrosRemovidos int    `json:"registros_removidos"`
}
