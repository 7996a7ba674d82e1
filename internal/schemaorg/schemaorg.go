// Package schemaorg holds the schema.org vocabulary used by profile
// authoring and projection: the type names offered to authors and the
// fixed constants projected documents reference.
package schemaorg

import "slices"

// Context is the JSON-LD @context of every projected document.
const Context = "https://schema.org"

// ActionTypeSearch is the one action type projected flat, without an
// EntryPoint wrapper around its target.
const ActionTypeSearch = "SearchAction"

// DefaultLanguage is applied when an action block leaves language empty.
// Actions offered in several languages are authored as separate blocks.
const DefaultLanguage = "en-US"

var weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var actionTypes = []string{
	"SearchAction",
	"OrderAction",
	"ReserveAction",
	"BuyAction",
	"RentAction",
	"DonateAction",
	"DownloadAction",
	"RegisterAction",
	"SubscribeAction",
	"ScheduleAction",
	"ViewAction",
	"WatchAction",
}

var resultTypes = []string{
	"Reservation",
	"BoatReservation",
	"BusReservation",
	"EventReservation",
	"FlightReservation",
	"FoodEstablishmentReservation",
	"LodgingReservation",
	"RentalCarReservation",
	"TaxiReservation",
	"TrainReservation",
	"Order",
	"Ticket",
}

var orgTypes = []string{
	"Organization",
	"Airline",
	"Consortium",
	"Corporation",
	"EducationalOrganization",
	"GovernmentOrganization",
	"MedicalOrganization",
	"NGO",
	"NewsMediaOrganization",
	"PerformingGroup",
	"SportsOrganization",
	"LocalBusiness",
	"AnimalShelter",
	"AutomotiveBusiness",
	"ChildCare",
	"DryCleaningOrLaundry",
	"EmergencyService",
	"EntertainmentBusiness",
	"FinancialService",
	"FoodEstablishment",
	"Bakery",
	"BarOrPub",
	"Brewery",
	"CafeOrCoffeeShop",
	"FastFoodRestaurant",
	"IceCreamShop",
	"Restaurant",
	"Winery",
	"GovernmentOffice",
	"HealthAndBeautyBusiness",
	"HomeAndConstructionBusiness",
	"InternetCafe",
	"LegalService",
	"Library",
	"LodgingBusiness",
	"MedicalBusiness",
	"ProfessionalService",
	"RadioStation",
	"RealEstateAgent",
	"RecyclingCenter",
	"SelfStorage",
	"ShoppingCenter",
	"SportsActivityLocation",
	"Store",
	"TelevisionStation",
	"TouristInformationCenter",
	"TravelAgency",
}

// EntryPoint targets carry all three platforms, always, in this order.
var actionPlatforms = []string{
	"http://schema.org/DesktopWebPlatform",
	"http://schema.org/IOSPlatform",
	"http://schema.org/AndroidPlatform",
}

// Values for the optional query marker on search actions. The marker is
// emitted verbatim; nothing downstream interprets it.
var searchQueryChoices = []string{
	"required",
	"required name=search_term_string",
}

// Weekdays returns the seven English day names in week order.
func Weekdays() []string { return slices.Clone(weekdays) }

// IsWeekday reports whether s is one of the seven day names.
func IsWeekday(s string) bool { return slices.Contains(weekdays, s) }

// ActionTypes returns the action types offered to authors.
func ActionTypes() []string { return slices.Clone(actionTypes) }

// IsActionType reports whether s is an offered action type.
func IsActionType(s string) bool { return slices.Contains(actionTypes, s) }

// ResultTypes returns the action result types offered to authors.
func ResultTypes() []string { return slices.Clone(resultTypes) }

// IsResultType reports whether s is an offered result type.
func IsResultType(s string) bool { return slices.Contains(resultTypes, s) }

// OrgTypes returns the organization types offered to authors.
func OrgTypes() []string { return slices.Clone(orgTypes) }

// IsOrgType reports whether s is an offered organization type.
func IsOrgType(s string) bool { return slices.Contains(orgTypes, s) }

// ActionPlatforms returns the platform URIs attached to EntryPoint targets.
func ActionPlatforms() []string { return slices.Clone(actionPlatforms) }

// SearchQueryChoices returns the accepted query marker values.
func SearchQueryChoices() []string { return slices.Clone(searchQueryChoices) }

// IsSearchQueryChoice reports whether s is an accepted query marker.
func IsSearchQueryChoice(s string) bool { return slices.Contains(searchQueryChoices, s) }
