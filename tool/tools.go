package tool

// DefaultTools returns the full Lagos capability set backed by ds.
func DefaultTools(ds *Dataset) []Tool {
	return []Tool{
		NewSearchAttractionsTool(ds),
		NewCheckSafetyStatusTool(ds),
		NewSearchHotelsTool(ds),
		NewGetLocalTipsTool(ds),
		NewMakeBookingReminderTool(),
	}
}
