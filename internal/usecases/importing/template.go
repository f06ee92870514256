package importing

// TemplateFilename é o nome sugerido para o download do modelo
const TemplateFilename = "campaign-performance-template.csv"

const templateCSV = `Date,Channel,Campaign,Spend,Impressions,Clicks,Conversions,Revenue
2025-07-01,Instagram,DT-Launch,350,12000,480,24,2400
2025-07-01,Google Ads,Search-Brand,250,8000,400,16,1600
2025-07-02,Email,Newsletter-July,60,5000,600,45,3600
2025-07-02,Facebook,DT-Launch,300,10000,300,10,1200
2025-07-03,Instagram,DT-Launch,180,7000,260,14,2100
2025-07-03,Google Ads,Retargeting,600,15000,500,20,3000
`

// TemplateCSV retorna o CSV de exemplo usado no download e na pré-visualização inicial
func TemplateCSV() string {
	return templateCSV
}
