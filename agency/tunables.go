package agency

const DefaultMaxSteps = 15

const ParsingErrorObservation = "Could not parse your response. Respond with a single JSON object in the format given above."
